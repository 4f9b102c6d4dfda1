package ordset

import (
	stdcmp "cmp"
	"fmt"
)

// Loader assembles a tree from keys supplied in ascending order, without
// going through Insert. Leaves are sealed at full capacity as keys stream
// in, and Build stitches the upper levels together bottom-up, so no node
// is ever split. The resulting tree is denser and shallower than one grown
// by repeated inserts, which leave split nodes half full.
//
// A Loader is single-use. After Build the assembled nodes belong to the
// returned tree and further calls fail with ErrLoaderBuilt.
type Loader[K any] struct {
	order  int
	cmp    func(K, K) int
	logger Logger
	checks bool

	leaves []*node[K] // sealed leaves, left to right
	seps   []K        // separators between consecutive leaves
	cur    *node[K]   // open leaf collecting keys
	last   K
	count  int
	built  bool
}

// NewLoader returns a loader for any ordered key type, comparing keys with
// the natural < ordering. The order must be at least MinOrder.
func NewLoader[K stdcmp.Ordered](order int, opts ...Option) (*Loader[K], error) {
	return NewLoaderFunc[K](order, stdcmp.Compare[K], opts...)
}

// NewLoaderFunc returns a loader ordered by compare, under the same
// contract as NewFunc. Keys passed to Add must ascend strictly under
// compare.
func NewLoaderFunc[K any](order int, compare func(a, b K) int, opts ...Option) (*Loader[K], error) {
	if order < MinOrder {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidOrder, order)
	}
	if compare == nil {
		return nil, ErrNilCompare
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Loader[K]{
		order:  order,
		cmp:    compare,
		logger: o.logger,
		checks: o.checks,
	}, nil
}

// Add appends key to the loader. Keys must sort strictly after their
// predecessor; an equal or smaller key returns ErrKeysUnsorted and leaves
// the loader unchanged.
func (l *Loader[K]) Add(key K) error {
	if l.built {
		return ErrLoaderBuilt
	}
	if l.count > 0 && l.cmp(key, l.last) <= 0 {
		return ErrKeysUnsorted
	}

	switch {
	case l.cur == nil:
		l.cur = &node[K]{order: l.order, kind: kindLeaf}
		l.cur.keys = append(l.cur.keys, key)
	case len(l.cur.keys) == l.order-1:
		// The open leaf is at capacity, so this key becomes the separator
		// above it and the next key starts a fresh leaf.
		l.leaves = append(l.leaves, l.cur)
		l.seps = append(l.seps, key)
		l.cur = nil
	default:
		l.cur.keys = append(l.cur.keys, key)
	}

	l.last = key
	l.count++
	return nil
}

// Len returns the number of keys added so far.
func (l *Loader[K]) Len() int {
	return l.count
}

// Build assembles the accumulated keys into a tree. Building with no keys
// returns a valid empty tree. The loader cannot be reused afterwards.
func (l *Loader[K]) Build() (*Tree[K], error) {
	if l.built {
		return nil, ErrLoaderBuilt
	}
	l.built = true

	if l.cur != nil {
		l.leaves = append(l.leaves, l.cur)
		l.cur = nil
	} else if n := len(l.leaves); n > 0 {
		// The stream ended on a separator, leaving it with no subtree to
		// its right. Demote it into a tail leaf and promote the last sealed
		// key in its place, which keeps every leaf non-empty.
		sealed := l.leaves[n-1]
		at := len(sealed.keys) - 1
		tail := &node[K]{order: l.order, kind: kindLeaf, keys: []K{l.seps[n-1]}}
		l.seps[n-1] = sealed.keys[at]
		sealed.keys = sealed.keys[:at]
		l.leaves = append(l.leaves, tail)
	}

	t := &Tree[K]{
		order:  l.order,
		cmp:    l.cmp,
		count:  l.count,
		height: 1,
		logger: l.logger,
		checks: l.checks,
	}

	children, seps := l.leaves, l.seps
	for len(children) > 1 {
		children, seps = l.packLevel(children, seps)
		t.height++
	}

	if len(children) == 1 {
		t.root = children[0]
		t.root.kind = kindRoot
	} else {
		t.root = &node[K]{order: l.order, kind: kindRoot}
	}

	if t.checks {
		if err := t.Validate(); err != nil {
			t.logger.Error("tree invariant violated after bulk load", "err", err)
			panic(err)
		}
	}

	t.logger.Info("bulk load complete", "keys", t.count, "height", t.height)
	return t, nil
}

// packLevel groups one level of nodes under freshly built parents and
// returns the parents with the separators left between them. Parents take
// order children apiece, except that the final two groups are rebalanced
// whenever a plain greedy cut would drop the last parent below the minimum
// fill an internal node must keep.
func (l *Loader[K]) packLevel(children []*node[K], seps []K) ([]*node[K], []K) {
	minChildren := (l.order + 1) / 2

	var parents []*node[K]
	var parentSeps []K
	for i := 0; i < len(children); {
		take := len(children) - i
		if take > l.order {
			take = l.order
			if rest := len(children) - i - take; rest > 0 && rest < minChildren {
				take = len(children) - i - minChildren
			}
		}

		parent := &node[K]{order: l.order, kind: kindInternal}
		parent.keys = append(parent.keys, seps[i:i+take-1]...)
		parent.children = append(parent.children, children[i:i+take]...)
		parents = append(parents, parent)

		if i+take < len(children) {
			parentSeps = append(parentSeps, seps[i+take-1])
		}
		i += take
	}
	return parents, parentSeps
}
