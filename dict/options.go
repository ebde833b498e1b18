package dict

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/tuannh982/hashdict/dict/hashing"
)

const (
	DefaultCapacity      = 10
	DefaultMaxLoadFactor = 0.7
	DefaultGrowStep      = 10
)

// GrowPolicy decides what happens to stored entries when a hash map gains capacity.
type GrowPolicy int

const (
	// GrowAppend appends empty buckets or slots and leaves every entry where it is.
	// Lookups then visit the home position of each capacity the table has had.
	GrowAppend GrowPolicy = iota
	// GrowRehash moves every entry to its home position in the new capacity.
	GrowRehash
)

func (p GrowPolicy) String() string {
	switch p {
	case GrowAppend:
		return "append"
	case GrowRehash:
		return "rehash"
	default:
		return fmt.Sprintf("GrowPolicy(%d)", int(p))
	}
}

type Option[K comparable] func(*options[K])

type options[K comparable] struct {
	capacity   int
	maxLoad    float64
	hash       hashing.HashFunc[K]
	growStep   int
	growPolicy GrowPolicy
	log        *log.Entry
}

func WithCapacity[K comparable](n int) Option[K] {
	return func(o *options[K]) {
		o.capacity = n
	}
}

func WithMaxLoadFactor[K comparable](f float64) Option[K] {
	return func(o *options[K]) {
		o.maxLoad = f
	}
}

func WithHashFunc[K comparable](h hashing.HashFunc[K]) Option[K] {
	return func(o *options[K]) {
		o.hash = h
	}
}

// WithGrowStep sets how many buckets or slots one growth appends. Zero disables growth.
func WithGrowStep[K comparable](n int) Option[K] {
	return func(o *options[K]) {
		o.growStep = n
	}
}

func WithGrowPolicy[K comparable](p GrowPolicy) Option[K] {
	return func(o *options[K]) {
		o.growPolicy = p
	}
}

func WithLogger[K comparable](l *log.Entry) Option[K] {
	return func(o *options[K]) {
		o.log = l
	}
}

func newOptions[K comparable](component string, opts []Option[K]) options[K] {
	o := options[K]{
		capacity:   DefaultCapacity,
		maxLoad:    DefaultMaxLoadFactor,
		growStep:   DefaultGrowStep,
		growPolicy: GrowAppend,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity < 1 {
		panic(fmt.Sprintf("dict: capacity must be positive, got %d", o.capacity))
	}
	if !(o.maxLoad > 0 && o.maxLoad <= 1) {
		panic(fmt.Sprintf("dict: max load factor must be in (0, 1], got %v", o.maxLoad))
	}
	if o.growStep < 0 {
		panic(fmt.Sprintf("dict: grow step must not be negative, got %d", o.growStep))
	}
	if o.growPolicy != GrowAppend && o.growPolicy != GrowRehash {
		panic(fmt.Sprintf("dict: unknown grow policy %v", o.growPolicy))
	}
	if o.hash == nil {
		o.hash = hashing.Default[K]()
	}
	if o.log == nil {
		o.log = log.WithField("component", component)
	}
	return o
}
