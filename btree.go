package ordset

import (
	stdcmp "cmp"
	"fmt"
)

// MinOrder is the smallest order a tree can be built with. Below three,
// splitting a full node cannot leave a key on both sides of the median.
const MinOrder = 3

// Tree is an in-memory B-Tree holding a set of keys of type K. Every node
// shares the tree's order, the maximum number of children a node may hold,
// so capacity rules are uniform across the whole structure.
//
// A Tree is not safe for concurrent use. Callers sharing one across
// goroutines must serialize all access, including reads.
type Tree[K any] struct {
	order  int
	cmp    func(K, K) int
	root   *node[K]
	count  int
	height int

	logger Logger
	checks bool
}

// New returns an empty tree for any ordered key type, comparing keys with
// the natural < ordering. The order must be at least MinOrder.
func New[K stdcmp.Ordered](order int, opts ...Option) (*Tree[K], error) {
	return NewFunc[K](order, stdcmp.Compare[K], opts...)
}

// NewFunc returns an empty tree ordered by compare, which must return a
// negative value when a sorts before b, zero when the two are equal, and a
// positive value otherwise.
func NewFunc[K any](order int, compare func(a, b K) int, opts ...Option) (*Tree[K], error) {
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

	return &Tree[K]{
		order:  order,
		cmp:    compare,
		root:   &node[K]{order: order, kind: kindRoot},
		height: 1,
		logger: o.logger,
		checks: o.checks,
	}, nil
}

// Insert adds key to the set and reports whether it was absent. Inserting a
// key that is already present leaves the tree untouched.
func (t *Tree[K]) Insert(key K) bool {
	added := t.root.insert(key, t.cmp)
	if added {
		t.count++
	}
	if t.root.isOverflow() {
		t.splitRoot()
	}

	if t.checks {
		if err := t.Validate(); err != nil {
			t.logger.Error("tree invariant violated after insert", "err", err)
			panic(err)
		}
	}
	return added
}

// splitRoot replaces the overflowing root with a fresh root holding the old
// root's median key over the two halves. The root has no parent to push its
// median into, so this is the one split the tree performs itself, and the
// only operation that grows the tree's height.
func (t *Tree[K]) splitRoot() {
	old := t.root
	at := t.order / 2

	kind := kindInternal
	if old.leaf() {
		kind = kindLeaf
	}

	left := &node[K]{order: t.order, kind: kind}
	left.keys = append(left.keys, old.keys[:at]...)
	right := &node[K]{order: t.order, kind: kind}
	right.keys = append(right.keys, old.keys[at+1:]...)
	if !old.leaf() {
		left.children = append(left.children, old.children[:at+1]...)
		right.children = append(right.children, old.children[at+1:]...)
	}

	t.root = &node[K]{
		order:    t.order,
		kind:     kindRoot,
		keys:     []K{old.keys[at]},
		children: []*node[K]{left, right},
	}
	t.height++

	t.logger.Info("root split", "height", t.height, "keys", t.count)
}

// Get returns the stored key that compares equal to key, or ErrKeyNotFound.
// Under a comparator that treats distinct values as equal, the stored key
// is the one first inserted, which need not be byte-for-byte the argument.
func (t *Tree[K]) Get(key K) (K, error) {
	k, ok := t.root.get(key, t.cmp)
	if !ok {
		var zero K
		return zero, ErrKeyNotFound
	}
	return k, nil
}

// Has reports whether key is in the set.
func (t *Tree[K]) Has(key K) bool {
	_, ok := t.root.get(key, t.cmp)
	return ok
}

// Len returns the number of keys in the set.
func (t *Tree[K]) Len() int {
	return t.count
}

// Height returns the number of node levels. An empty tree has height 1;
// each root split adds a level and nothing ever removes one.
func (t *Tree[K]) Height() int {
	return t.height
}

// Order returns the order the tree was built with.
func (t *Tree[K]) Order() int {
	return t.order
}

// Min returns the smallest key in the set, or ErrKeyNotFound on an empty
// tree.
func (t *Tree[K]) Min() (K, error) {
	if t.count == 0 {
		var zero K
		return zero, ErrKeyNotFound
	}

	current := t.root
	for !current.leaf() {
		current = current.children[0]
	}
	return current.keys[0], nil
}

// Max returns the largest key in the set, or ErrKeyNotFound on an empty
// tree.
func (t *Tree[K]) Max() (K, error) {
	if t.count == 0 {
		var zero K
		return zero, ErrKeyNotFound
	}

	current := t.root
	for !current.leaf() {
		current = current.children[len(current.children)-1]
	}
	return current.keys[len(current.keys)-1], nil
}

// Ascend calls fn on every key in ascending order until fn returns false.
func (t *Tree[K]) Ascend(fn func(key K) bool) {
	t.root.ascend(fn)
}

// Descend calls fn on every key in descending order until fn returns false.
func (t *Tree[K]) Descend(fn func(key K) bool) {
	t.root.descend(fn)
}

// Keys returns every key in ascending order in a freshly allocated slice.
func (t *Tree[K]) Keys() []K {
	out := make([]K, 0, t.count)
	t.root.ascend(func(k K) bool {
		out = append(out, k)
		return true
	})
	return out
}

// String summarizes the tree's shape. Use a Visualizer for the full layout.
func (t *Tree[K]) String() string {
	return fmt.Sprintf("ordset.Tree(order=%d len=%d height=%d)", t.order, t.count, t.height)
}
