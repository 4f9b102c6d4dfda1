package bench

import (
	"flag"
	"fmt"
	"math/rand"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/elastic/go-freelru"
	gbtree "github.com/google/btree"

	"ordset"
)

var (
	benchOrdset = flag.Bool("ordset", false, "run only ordset benchmarks")
)

const (
	benchOrder   = 64
	benchNumKeys = 10000
)

// benchKeys returns benchNumKeys distinct keys in a fixed shuffled order.
func benchKeys() []string {
	keys := make([]string, benchNumKeys)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%020d", i)
	}
	rng := rand.New(rand.NewSource(42))
	rng.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	return keys
}

func hashString(s string) uint32 {
	return uint32(xxhash.Sum64String(s))
}

// Insert Benchmarks

func BenchmarkSequentialInsert(b *testing.B) {
	b.Run("Ordset", func(b *testing.B) {
		tree, _ := ordset.New[string](benchOrder)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			tree.Insert(fmt.Sprintf("key-%020d", i))
		}
	})

	b.Run("GoogleBTree", func(b *testing.B) {
		if *benchOrdset {
			b.Skip()
		}
		tree := gbtree.NewOrderedG[string](benchOrder / 2)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			tree.ReplaceOrInsert(fmt.Sprintf("key-%020d", i))
		}
	})

	b.Run("FreeLRU", func(b *testing.B) {
		if *benchOrdset {
			b.Skip()
		}
		lru, _ := freelru.New[string, struct{}](benchNumKeys*2, hashString)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			lru.Add(fmt.Sprintf("key-%020d", i), struct{}{})
		}
	})
}

func BenchmarkRandomInsert(b *testing.B) {
	b.Run("Ordset", func(b *testing.B) {
		tree, _ := ordset.New[string](benchOrder)
		rng := rand.New(rand.NewSource(42))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			tree.Insert(fmt.Sprintf("key-%020d", rng.Intn(1<<30)))
		}
	})

	b.Run("GoogleBTree", func(b *testing.B) {
		if *benchOrdset {
			b.Skip()
		}
		tree := gbtree.NewOrderedG[string](benchOrder / 2)
		rng := rand.New(rand.NewSource(42))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			tree.ReplaceOrInsert(fmt.Sprintf("key-%020d", rng.Intn(1<<30)))
		}
	})

	b.Run("FreeLRU", func(b *testing.B) {
		if *benchOrdset {
			b.Skip()
		}
		lru, _ := freelru.New[string, struct{}](benchNumKeys*2, hashString)
		rng := rand.New(rand.NewSource(42))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			lru.Add(fmt.Sprintf("key-%020d", rng.Intn(1<<30)), struct{}{})
		}
	})
}

// Read Benchmarks

func BenchmarkRandomGet(b *testing.B) {
	keys := benchKeys()

	b.Run("Ordset", func(b *testing.B) {
		tree, _ := ordset.New[string](benchOrder)
		for _, key := range keys {
			tree.Insert(key)
		}

		rng := rand.New(rand.NewSource(43))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			tree.Get(keys[rng.Intn(benchNumKeys)])
		}
	})

	b.Run("GoogleBTree", func(b *testing.B) {
		if *benchOrdset {
			b.Skip()
		}
		tree := gbtree.NewOrderedG[string](benchOrder / 2)
		for _, key := range keys {
			tree.ReplaceOrInsert(key)
		}

		rng := rand.New(rand.NewSource(43))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			tree.Get(keys[rng.Intn(benchNumKeys)])
		}
	})

	b.Run("FreeLRU", func(b *testing.B) {
		if *benchOrdset {
			b.Skip()
		}
		lru, _ := freelru.New[string, struct{}](benchNumKeys*2, hashString)
		for _, key := range keys {
			lru.Add(key, struct{}{})
		}

		rng := rand.New(rand.NewSource(43))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			lru.Get(keys[rng.Intn(benchNumKeys)])
		}
	})
}

// Traversal Benchmarks
//
// FreeLRU keeps no key order, so only the trees appear here.

func BenchmarkAscend(b *testing.B) {
	keys := benchKeys()

	b.Run("Ordset", func(b *testing.B) {
		tree, _ := ordset.New[string](benchOrder)
		for _, key := range keys {
			tree.Insert(key)
		}
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			n := 0
			tree.Ascend(func(string) bool {
				n++
				return true
			})
			if n != benchNumKeys {
				b.Fatalf("visited %d keys", n)
			}
		}
	})

	b.Run("OrdsetCursor", func(b *testing.B) {
		tree, _ := ordset.New[string](benchOrder)
		for _, key := range keys {
			tree.Insert(key)
		}
		cursor := tree.Cursor()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			n := 0
			for ok := cursor.First(); ok; ok = cursor.Next() {
				n++
			}
			if n != benchNumKeys {
				b.Fatalf("visited %d keys", n)
			}
		}
	})

	b.Run("GoogleBTree", func(b *testing.B) {
		if *benchOrdset {
			b.Skip()
		}
		tree := gbtree.NewOrderedG[string](benchOrder / 2)
		for _, key := range keys {
			tree.ReplaceOrInsert(key)
		}
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			n := 0
			tree.Ascend(func(string) bool {
				n++
				return true
			})
			if n != benchNumKeys {
				b.Fatalf("visited %d keys", n)
			}
		}
	})
}

// Mixed Workload

func BenchmarkReadWriteMix(b *testing.B) {
	keys := benchKeys()

	b.Run("Ordset", func(b *testing.B) {
		tree, _ := ordset.New[string](benchOrder)
		for _, key := range keys {
			tree.Insert(key)
		}

		rng := rand.New(rand.NewSource(43))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			// 80% reads, 20% writes
			if i%5 == 0 {
				tree.Insert(fmt.Sprintf("key-%020d", rng.Intn(1<<30)))
			} else {
				tree.Has(keys[rng.Intn(benchNumKeys)])
			}
		}
	})

	b.Run("GoogleBTree", func(b *testing.B) {
		if *benchOrdset {
			b.Skip()
		}
		tree := gbtree.NewOrderedG[string](benchOrder / 2)
		for _, key := range keys {
			tree.ReplaceOrInsert(key)
		}

		rng := rand.New(rand.NewSource(43))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			// 80% reads, 20% writes
			if i%5 == 0 {
				tree.ReplaceOrInsert(fmt.Sprintf("key-%020d", rng.Intn(1<<30)))
			} else {
				tree.Has(keys[rng.Intn(benchNumKeys)])
			}
		}
	})

	b.Run("FreeLRU", func(b *testing.B) {
		if *benchOrdset {
			b.Skip()
		}
		lru, _ := freelru.New[string, struct{}](benchNumKeys*2, hashString)
		for _, key := range keys {
			lru.Add(key, struct{}{})
		}

		rng := rand.New(rand.NewSource(43))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			// 80% reads, 20% writes
			if i%5 == 0 {
				lru.Add(fmt.Sprintf("key-%020d", rng.Intn(1<<30)), struct{}{})
			} else {
				lru.Get(keys[rng.Intn(benchNumKeys)])
			}
		}
	})
}
