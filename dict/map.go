// Package dict implements three key/value maps with different storage strategies:
// a separate chaining hash map, an open addressing hash map with linear probing and
// tombstones, and an unbalanced binary search tree ordered map.
//
// None of the maps are safe for concurrent use.
package dict

import "iter"

type Map[K any, V any] interface {
	Contains(k K) bool
	// Set creates or overwrites the entry of k.
	Set(k K, v V) error
	Get(k K) (V, error)
	Delete(k K) error
	Size() int
	Keys() []K
	Values() []V
	All() iter.Seq2[K, V]
	String() string
}

var (
	_ Map[int, int] = (*ChainedMap[int, int])(nil)
	_ Map[int, int] = (*OpenAddressMap[int, int])(nil)
	_ Map[int, int] = (*OrderedMap[int, int])(nil)
)

func collectKeys[K, V any](seq iter.Seq2[K, V], size int) []K {
	arr := make([]K, 0, size)
	for k := range seq {
		arr = append(arr, k)
	}
	return arr
}

func collectValues[K, V any](seq iter.Seq2[K, V], size int) []V {
	arr := make([]V, 0, size)
	for _, v := range seq {
		arr = append(arr, v)
	}
	return arr
}
