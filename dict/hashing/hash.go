// Package hashing provides the hash functions accepted by the hash based maps.
//
// A HashFunc must be deterministic. Its result may be any int: the maps reduce it
// into their current capacity with a non-negative modulo.
package hashing

import (
	"fmt"

	"github.com/zeebo/xxh3"
	"golang.org/x/exp/constraints"
)

type HashFunc[K any] func(K) int

func Identity[K constraints.Integer]() HashFunc[K] {
	return func(k K) int {
		return int(k)
	}
}

func Modulo[K constraints.Integer](n K) HashFunc[K] {
	return func(k K) int {
		return int(k % n)
	}
}

// Constant returns a degenerate hash that sends every key to bin. Useful to force
// worst case collisions.
func Constant[K any](bin int) HashFunc[K] {
	return func(K) int {
		return bin
	}
}

func XXH3[K ~string]() HashFunc[K] {
	return func(k K) int {
		return fold(xxh3.HashString(string(k)))
	}
}

// Default hashes integers by identity, strings with xxh3 and any other comparable
// value with xxh3 over its Go-syntax representation. Unsigned values above
// math.MaxInt wrap to negative hashes.
func Default[K comparable]() HashFunc[K] {
	return func(k K) int {
		switch v := any(k).(type) {
		case int:
			return v
		case int8:
			return int(v)
		case int16:
			return int(v)
		case int32:
			return int(v)
		case int64:
			return int(v)
		case uint:
			return int(v)
		case uint8:
			return int(v)
		case uint16:
			return int(v)
		case uint32:
			return int(v)
		case uint64:
			return int(v)
		case string:
			return fold(xxh3.HashString(v))
		default:
			return fold(xxh3.HashString(fmt.Sprintf("%#v", v)))
		}
	}
}

func fold(h uint64) int {
	return int(h >> 1)
}
