// Package algo contains search and slice algorithms shared by the tree's
// nodes and cursors.
package algo

import "sort"

// searchThreshold is the key count below which a linear scan beats binary
// search on real hardware.
const searchThreshold = 32

// Find locates key in the sorted slice keys and reports whether it is
// present. When the key is absent the returned index is the position the
// key would occupy, which is also the index of the child subtree that must
// contain it.
func Find[K any](keys []K, key K, cmp func(K, K) int) (int, bool) {
	if len(keys) < searchThreshold {
		for i := range keys {
			c := cmp(key, keys[i])
			if c == 0 {
				return i, true
			}
			if c < 0 {
				return i, false
			}
		}
		return len(keys), false
	}

	i := sort.Search(len(keys), func(i int) bool {
		return cmp(key, keys[i]) <= 0
	})
	if i < len(keys) && cmp(key, keys[i]) == 0 {
		return i, true
	}
	return i, false
}

// InsertAt inserts v at index i, shifting the tail right by one slot.
func InsertAt[T any](s []T, i int, v T) []T {
	var zero T
	s = append(s, zero)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}
