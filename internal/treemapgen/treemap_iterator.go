package treemapgen

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// TreeMapIterator is a type-safe iterator for TreeMap
type TreeMapIterator[K comparable, V any] struct {
	iterator treemap.Iterator
}

// Iterator returns a new TreeMapIterator positioned before the first entry
func (tm *TreeMap[K, V]) Iterator() *TreeMapIterator[K, V] {
	return &TreeMapIterator[K, V]{iterator: tm.internalMap.Iterator()}
}

// Next moves the iterator to the next element
func (it *TreeMapIterator[K, V]) Next() bool {
	return it.iterator.Next()
}

// Prev moves the iterator to the previous element.
// Call End first to walk the map from the largest key down.
func (it *TreeMapIterator[K, V]) Prev() bool {
	return it.iterator.Prev()
}

// End moves the iterator past the last element
func (it *TreeMapIterator[K, V]) End() {
	it.iterator.End()
}

// Key returns the current key of the iterator
func (it *TreeMapIterator[K, V]) Key() K {
	return mustBe[K](it.iterator.Key())
}

// Value returns the current value of the iterator
func (it *TreeMapIterator[K, V]) Value() V {
	return mustBe[V](it.iterator.Value())
}
