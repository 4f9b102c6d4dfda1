package ordset

import "ordset/internal/algo"

// nodeKind labels a node's position in the tree. Kinds are carried on the
// nodes themselves so that a detached subtree still knows what it is.
type nodeKind uint8

const (
	kindRoot nodeKind = iota
	kindInternal
	kindLeaf
)

func (k nodeKind) String() string {
	switch k {
	case kindRoot:
		return "root"
	case kindInternal:
		return "internal"
	case kindLeaf:
		return "leaf"
	default:
		return "unknown"
	}
}

// node is a single B-Tree node. Every node carries the tree's order so that
// splits can size the halves without reaching back to the tree. Children are
// owned exclusively by their parent; subtrees never share nodes.
type node[K any] struct {
	order    int
	kind     nodeKind
	keys     []K
	children []*node[K]
}

// leaf reports whether the node currently has no children. The root of a
// tree that has never split is kindRoot but behaves as a leaf, so behavior
// keys off this and not off the kind.
func (n *node[K]) leaf() bool {
	return len(n.children) == 0
}

// isOverflow reports whether the node has hit capacity. An overflowing node
// never resolves itself; its parent splits it, or the tree does when the
// root is the one overflowing.
func (n *node[K]) isOverflow() bool {
	return len(n.keys) == n.order
}

// get returns the stored key equal to key, descending into the one child
// subtree whose range could contain it.
func (n *node[K]) get(key K, cmp func(K, K) int) (K, bool) {
	idx, found := algo.Find(n.keys, key, cmp)
	if found {
		return n.keys[idx], true
	}
	if n.leaf() {
		var zero K
		return zero, false
	}
	return n.children[idx].get(key, cmp)
}

// insert adds key to the subtree rooted at n and reports whether the set
// grew. Overflowing children are split while the recursion unwinds, so on
// return every node below n is within capacity. n itself may be left
// overflowing; resolving that is the caller's job.
func (n *node[K]) insert(key K, cmp func(K, K) int) bool {
	idx, found := algo.Find(n.keys, key, cmp)
	if found {
		return false
	}

	if n.leaf() {
		n.keys = algo.InsertAt(n.keys, idx, key)
		return true
	}

	added := n.children[idx].insert(key, cmp)
	if n.children[idx].isOverflow() {
		n.splitChild(idx)
	}
	return added
}

// splitChild splits the overflowing child at index in two and promotes its
// median key into n, so n gains exactly one key and one child. The child
// keeps the keys below the median and a new right sibling of the same order
// and kind takes the keys above it. Calling this on a child below capacity
// is a bug in the caller.
func (n *node[K]) splitChild(index int) {
	child := n.children[index]
	if !child.isOverflow() {
		panic("ordset: splitting a node below capacity")
	}

	at := child.order / 2
	median := child.keys[at]

	right := &node[K]{order: child.order, kind: child.kind}
	right.keys = append(right.keys, child.keys[at+1:]...)
	if !child.leaf() {
		right.children = append(right.children, child.children[at+1:]...)
	}

	// Rebuild the left half on fresh backing arrays so the two halves
	// cannot alias each other through the old slices.
	leftKeys := make([]K, at)
	copy(leftKeys, child.keys[:at])
	if !child.leaf() {
		leftChildren := make([]*node[K], at+1)
		copy(leftChildren, child.children[:at+1])
		child.children = leftChildren
	}
	child.keys = leftKeys

	n.keys = algo.InsertAt(n.keys, index, median)
	n.children = algo.InsertAt(n.children, index+1, right)
}

// ascend streams the subtree's keys in ascending order until fn returns
// false, interleaving each child subtree with the separator key above it.
// It reports whether the walk ran to completion.
func (n *node[K]) ascend(fn func(K) bool) bool {
	if n.leaf() {
		for _, k := range n.keys {
			if !fn(k) {
				return false
			}
		}
		return true
	}

	for i, k := range n.keys {
		if !n.children[i].ascend(fn) {
			return false
		}
		if !fn(k) {
			return false
		}
	}
	return n.children[len(n.keys)].ascend(fn)
}

// descend is ascend's mirror image.
func (n *node[K]) descend(fn func(K) bool) bool {
	if n.leaf() {
		for i := len(n.keys) - 1; i >= 0; i-- {
			if !fn(n.keys[i]) {
				return false
			}
		}
		return true
	}

	if !n.children[len(n.keys)].descend(fn) {
		return false
	}
	for i := len(n.keys) - 1; i >= 0; i-- {
		if !fn(n.keys[i]) {
			return false
		}
		if !n.children[i].descend(fn) {
			return false
		}
	}
	return true
}
