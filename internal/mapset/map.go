package mapset

import (
	"github.com/emirpasic/gods/trees/btree"
	"github.com/emirpasic/gods/utils"
)

// btreeOrder is the branching factor of ordered sets.
const btreeOrder = 10

// Int64Set is an ordered set of int64 keys. Iteration is always ascending.
type Int64Set interface {
	Add(k int64) bool

	Remove(k int64) bool

	Contains(k int64) bool

	// Each calls f for every key in ascending order until f returns false.
	Each(f func(k int64) bool)

	Keys() []int64

	Size() int

	Clear()
}

func NewInt64Set() Int64Set {
	return &btreeSet{inner: btree.NewWith(btreeOrder, utils.Int64Comparator)}
}

type btreeSet struct {
	inner *btree.Tree
}

func (s *btreeSet) Add(k int64) bool {
	if _, ok := s.inner.Get(k); ok {
		return false
	}
	s.inner.Put(k, struct{}{})
	return true
}

func (s *btreeSet) Remove(k int64) bool {
	if _, ok := s.inner.Get(k); !ok {
		return false
	}
	s.inner.Remove(k)
	return true
}

func (s *btreeSet) Contains(k int64) bool {
	_, ok := s.inner.Get(k)
	return ok
}

func (s *btreeSet) Each(f func(k int64) bool) {
	it := s.inner.Iterator()
	for it.Next() {
		if !f(it.Key().(int64)) {
			return
		}
	}
}

func (s *btreeSet) Keys() []int64 {
	out := make([]int64, 0, s.inner.Size())
	s.Each(func(k int64) bool {
		out = append(out, k)
		return true
	})
	return out
}

func (s *btreeSet) Size() int {
	return s.inner.Size()
}

func (s *btreeSet) Clear() {
	s.inner.Clear()
}
