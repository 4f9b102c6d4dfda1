package ordset

import "fmt"

// Validate walks the whole tree and returns the first structural violation
// found, wrapped around ErrInvalidTree. A nil result means every node is
// within capacity and above its minimum occupancy, keys are strictly
// increasing within nodes and correctly bounded across subtrees, all leaves
// sit at the same depth, and the cached length and height agree with the
// actual structure.
//
// Validate is a full tree walk. WithInvariantChecks runs it after every
// insert; without that option it is on the caller to decide when to pay for
// it.
func (t *Tree[K]) Validate() error {
	counted := 0
	leafDepth := 0

	var walk func(n *node[K], depth int, lo, hi *K) error
	walk = func(n *node[K], depth int, lo, hi *K) error {
		if n == nil {
			return fmt.Errorf("%w: nil node at depth %d", ErrInvalidTree, depth)
		}
		if n.order != t.order {
			return fmt.Errorf("%w: node order %d differs from tree order %d", ErrInvalidTree, n.order, t.order)
		}
		if len(n.keys) >= n.order {
			return fmt.Errorf("%w: %s node holds %d keys, max is %d", ErrInvalidTree, n.kind, len(n.keys), n.order-1)
		}
		if len(n.children) > n.order {
			return fmt.Errorf("%w: %s node holds %d children, max is %d", ErrInvalidTree, n.kind, len(n.children), n.order)
		}

		switch n.kind {
		case kindRoot:
			if len(n.children) == 1 {
				return fmt.Errorf("%w: root has a single child", ErrInvalidTree)
			}
		case kindInternal:
			if minChildren := (n.order + 1) / 2; len(n.children) < minChildren {
				return fmt.Errorf("%w: internal node has %d children, min is %d", ErrInvalidTree, len(n.children), minChildren)
			}
		case kindLeaf:
			if len(n.children) != 0 {
				return fmt.Errorf("%w: leaf node has %d children", ErrInvalidTree, len(n.children))
			}
		default:
			return fmt.Errorf("%w: unknown node kind %d", ErrInvalidTree, uint8(n.kind))
		}

		if !n.leaf() && len(n.children) != len(n.keys)+1 {
			return fmt.Errorf("%w: %s node has %d keys but %d children", ErrInvalidTree, n.kind, len(n.keys), len(n.children))
		}

		for i := range n.keys {
			if i > 0 && t.cmp(n.keys[i-1], n.keys[i]) >= 0 {
				return fmt.Errorf("%w: keys out of order at index %d of %s node", ErrInvalidTree, i, n.kind)
			}
			if lo != nil && t.cmp(n.keys[i], *lo) <= 0 {
				return fmt.Errorf("%w: key at index %d of %s node not above its subtree's lower bound", ErrInvalidTree, i, n.kind)
			}
			if hi != nil && t.cmp(n.keys[i], *hi) >= 0 {
				return fmt.Errorf("%w: key at index %d of %s node not below its subtree's upper bound", ErrInvalidTree, i, n.kind)
			}
		}
		counted += len(n.keys)

		if n.leaf() {
			if leafDepth == 0 {
				leafDepth = depth
			} else if leafDepth != depth {
				return fmt.Errorf("%w: leaves at depths %d and %d", ErrInvalidTree, leafDepth, depth)
			}
			return nil
		}

		// Each child's keys must stay strictly between the separators on
		// either side of its slot.
		for i := range n.children {
			childLo, childHi := lo, hi
			if i > 0 {
				childLo = &n.keys[i-1]
			}
			if i < len(n.keys) {
				childHi = &n.keys[i]
			}
			if err := walk(n.children[i], depth+1, childLo, childHi); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(t.root, 1, nil, nil); err != nil {
		return err
	}
	if counted != t.count {
		return fmt.Errorf("%w: tree length %d but %d keys stored", ErrInvalidTree, t.count, counted)
	}
	if leafDepth != t.height {
		return fmt.Errorf("%w: tree height %d but leaves at depth %d", ErrInvalidTree, t.height, leafDepth)
	}
	return nil
}
