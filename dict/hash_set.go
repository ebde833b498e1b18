package dict

import (
	"github.com/pkg/errors"

	"github.com/tuannh982/hashdict/utils/collections"
)

type hashSet[V comparable] struct {
	entries *ChainedMap[V, struct{}]
}

// NewHashSet returns a Set backed by a ChainedMap built with opts.
func NewHashSet[V comparable](opts ...Option[V]) Set[V] {
	return &hashSet[V]{
		entries: NewChainedMap[V, struct{}](opts...),
	}
}

func (s *hashSet[V]) Contains(v V) bool {
	return s.entries.Contains(v)
}

func (s *hashSet[V]) Add(v V) error {
	if s.Contains(v) {
		return errors.WithMessagef(collections.ErrValueExisted, "value %v", v)
	}
	return s.entries.Set(v, struct{}{})
}

func (s *hashSet[V]) Remove(v V) error {
	if err := s.entries.Delete(v); err != nil {
		return errors.WithMessagef(collections.ErrValueNotExisted, "value %v", v)
	}
	return nil
}

func (s *hashSet[V]) Size() int {
	return s.entries.Size()
}

func (s *hashSet[V]) Entries() []V {
	return s.entries.Keys()
}
