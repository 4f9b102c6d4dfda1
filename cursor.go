package ordset

// path is one level in the cursor's navigation path from root to leaf.
// For the leaf on top of the stack, childIndex is the key the cursor is at.
// For internal nodes beneath it, childIndex counts that node's separator
// keys already emitted, which is also the child subtree being explored.
type path[K any] struct {
	node       *node[K]
	childIndex int
}

// Cursor provides ordered iteration over a tree's keys without recursion,
// holding its position as an explicit root-to-leaf path. It moves forward
// only and can be rewound at any time with First.
//
// A cursor reads the live tree. Inserting while a cursor is open
// invalidates it, the same way mutation invalidates an in-flight Ascend.
type Cursor[K any] struct {
	tree  *Tree[K]
	stack []path[K]
	key   K
	valid bool
}

// Cursor returns a cursor on t positioned before the first key. Call First
// to position it.
func (t *Tree[K]) Cursor() *Cursor[K] {
	return &Cursor[K]{tree: t}
}

// First positions the cursor at the smallest key and reports whether one
// exists.
func (c *Cursor[K]) First() bool {
	c.stack = c.stack[:0]
	c.valid = false

	// Descend to leftmost leaf.
	n := c.tree.root
	for !n.leaf() {
		c.stack = append(c.stack, path[K]{node: n})
		n = n.children[0]
	}
	c.stack = append(c.stack, path[K]{node: n})

	if len(n.keys) == 0 {
		return false
	}
	c.key = n.keys[0]
	c.valid = true
	return true
}

// Next advances to the next key in ascending order and reports whether one
// exists. Once exhausted the cursor stays invalid until First is called.
func (c *Cursor[K]) Next() bool {
	if !c.valid {
		return false
	}

	top := &c.stack[len(c.stack)-1]
	if top.node.leaf() {
		// Try to move within the current leaf.
		top.childIndex++
		if top.childIndex < len(top.node.keys) {
			c.key = top.node.keys[top.childIndex]
			return true
		}

		// Leaf exhausted. Pop up the stack to the nearest ancestor that
		// still has a separator key to emit.
		c.stack = c.stack[:len(c.stack)-1]
		for len(c.stack) > 0 {
			parent := &c.stack[len(c.stack)-1]
			if parent.childIndex < len(parent.node.keys) {
				c.key = parent.node.keys[parent.childIndex]
				parent.childIndex++
				return true
			}
			c.stack = c.stack[:len(c.stack)-1]
		}
		c.valid = false
		return false
	}

	// The previous call emitted one of top's separators. Continue with the
	// leftmost leaf of the subtree to that separator's right.
	n := top.node.children[top.childIndex]
	for !n.leaf() {
		c.stack = append(c.stack, path[K]{node: n})
		n = n.children[0]
	}
	c.stack = append(c.stack, path[K]{node: n})
	c.key = n.keys[0]
	return true
}

// Key returns the key the cursor is positioned on, meaningful only while
// Valid reports true.
func (c *Cursor[K]) Key() K {
	return c.key
}

// Valid reports whether the cursor is positioned on a key.
func (c *Cursor[K]) Valid() bool {
	return c.valid
}
