package Intrusive

import (
	"testing"

	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// compares the unbalanced tree against https://github.com/google/btree and
// https://github.com/petar/GoLLRB on random keys, where an unbalanced tree has
// average depth O(log n).
const bAddN = 1 << 16

var bKeys = func() []int {
	ks := make([]int, bAddN)
	for i := range ks {
		ks[i] = rg.Int()
	}
	return ks
}()

func BenchmarkTree_Insert(b *testing.B) {
	for range b.N {
		a, tree := newTree(bAddN)
		for _, k := range bKeys {
			tree.Insert(a.Alloc(item{k: k}))
		}
	}
}

func BenchmarkBTree_Insert(b *testing.B) {
	for range b.N {
		tree := btree.NewOrderedG[int](32)
		for _, k := range bKeys {
			tree.ReplaceOrInsert(k)
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	for range b.N {
		tree := llrb.New()
		for _, k := range bKeys {
			tree.ReplaceOrInsert(llrb.Int(k))
		}
	}
}

var sideEff Handle

func BenchmarkTree_Find(b *testing.B) {
	a, tree := newTree(bAddN)
	for _, k := range bKeys {
		tree.Insert(a.Alloc(item{k: k}))
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range bKeys {
			sideEff = tree.Find(k).Handle()
		}
	}
}

func BenchmarkLLRB_Find(b *testing.B) {
	tree := llrb.New()
	for _, k := range bKeys {
		tree.ReplaceOrInsert(llrb.Int(k))
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range bKeys {
			if tree.Get(llrb.Int(k)) == nil {
				b.Fail()
			}
		}
	}
}

func BenchmarkTree_EraseAll(b *testing.B) {
	for range b.N {
		b.StopTimer()
		a, tree := newTree(bAddN)
		for _, k := range bKeys {
			tree.Insert(a.Alloc(item{k: k}))
		}
		b.StartTimer()
		for it := tree.Begin(); it.Valid(); {
			h := it.Handle()
			it = tree.Erase(h)
			a.Free(h)
		}
	}
}

func BenchmarkBTree_EraseAll(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree := btree.NewOrderedG[int](32)
		for _, k := range bKeys {
			tree.ReplaceOrInsert(k)
		}
		b.StartTimer()
		for tree.Len() > 0 {
			tree.DeleteMin()
		}
	}
}
