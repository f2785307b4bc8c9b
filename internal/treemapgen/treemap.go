package treemapgen

import (
	"fmt"
	"reflect"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// TreeMap is a generic wrapper around treemap.Map to add type safety
type TreeMap[K comparable, V any] struct {
	internalMap *treemap.Map
}

// NewTreeMap creates a new TreeMap ordered by comparator
func NewTreeMap[K comparable, V any](comparator utils.Comparator) *TreeMap[K, V] {
	return &TreeMap[K, V]{
		internalMap: treemap.NewWith(comparator),
	}
}

// Put adds a key-value pair to the map
func (tm *TreeMap[K, V]) Put(key K, value V) {
	tm.internalMap.Put(key, value)
}

func (tm *TreeMap[K, V]) Size() int {
	return tm.internalMap.Size()
}

// Get retrieves the value stored for key
func (tm *TreeMap[K, V]) Get(key K) (V, bool) {
	value, found := tm.internalMap.Get(key)
	if !found {
		var zero V
		return zero, false
	}
	return mustBe[V](value), true
}

// Floor finds the largest key that is smaller than or equal to key
func (tm *TreeMap[K, V]) Floor(key K) (K, V, bool) {
	foundKey, foundValue := tm.internalMap.Floor(key)
	if foundKey == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return mustBe[K](foundKey), mustBe[V](foundValue), true
}

// Max returns the largest entry of the map
func (tm *TreeMap[K, V]) Max() (K, V, bool) {
	key, value := tm.internalMap.Max()
	if key == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return mustBe[K](key), mustBe[V](value), true
}

// Values returns all values ordered by key
func (tm *TreeMap[K, V]) Values() []V {
	raw := tm.internalMap.Values()
	values := make([]V, 0, len(raw))
	for _, v := range raw {
		values = append(values, mustBe[V](v))
	}
	return values
}

func mustBe[T any](v interface{}) T {
	typed, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("type mismatch: expected %v, got %v", reflect.TypeOf((*T)(nil)).Elem(), reflect.TypeOf(v)))
	}
	return typed
}
