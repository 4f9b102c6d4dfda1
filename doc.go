// Package ordset implements an in-memory B-Tree of arbitrary order for use
// as an ordered set.
//
// The tree keeps its keys sorted and self-balances by splitting nodes that
// reach capacity, so lookups and insertions stay logarithmic no matter the
// insertion order. It has set semantics: a key is either present or absent,
// and inserting a present key changes nothing.
//
// Keys of any ordered type are supported through New; arbitrary types work
// with NewFunc and a three-way comparator. Already-sorted input can skip
// the insertion path entirely with a Loader, which packs leaves directly
// and stacks the upper levels on top.
//
// The tree is not meant for persistent storage and is not safe for
// concurrent use; callers that share a tree across goroutines must
// serialize access themselves.
package ordset
