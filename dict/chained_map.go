package dict

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/tuannh982/hashdict/dict/hashing"
	"github.com/tuannh982/hashdict/dict/internal"
	mathutil "github.com/tuannh982/hashdict/utils/math"
)

// ChainedMap is a hash map resolving collisions by separate chaining. Each bucket
// is a doubly linked chain, new entries go to the head of their chain.
type ChainedMap[K comparable, V any] struct {
	buckets    []internal.Chain[K, V]
	size       int
	gens       generations
	hash       hashing.HashFunc[K]
	maxLoad    float64
	growStep   int
	growPolicy GrowPolicy
	log        *log.Entry
}

func NewChainedMap[K comparable, V any](opts ...Option[K]) *ChainedMap[K, V] {
	o := newOptions("chained_map", opts)
	return &ChainedMap[K, V]{
		buckets:    make([]internal.Chain[K, V], o.capacity),
		gens:       newGenerations(o.capacity),
		hash:       o.hash,
		maxLoad:    o.maxLoad,
		growStep:   o.growStep,
		growPolicy: o.growPolicy,
		log:        o.log,
	}
}

func (m *ChainedMap[K, V]) find(k K) (*internal.Chain[K, V], *internal.Node[K, V]) {
	for idx := range m.gens.homes(m.hash(k)) {
		chain := &m.buckets[idx]
		if n := chain.Find(k); n != nil {
			return chain, n
		}
	}
	return nil, nil
}

func (m *ChainedMap[K, V]) Contains(k K) bool {
	_, n := m.find(k)
	return n != nil
}

func (m *ChainedMap[K, V]) Get(k K) (v V, err error) {
	_, n := m.find(k)
	if n == nil {
		return v, keyNotFound(k)
	}
	return n.Value, nil
}

func (m *ChainedMap[K, V]) Set(k K, v V) error {
	if _, n := m.find(k); n != nil {
		n.Value = v
		return nil
	}
	if m.growStep > 0 && m.LoadFactor() >= m.maxLoad {
		m.grow()
	}
	idx := mathutil.Mod(m.hash(k), len(m.buckets))
	m.buckets[idx].PushFront(k, v)
	m.size++
	return nil
}

func (m *ChainedMap[K, V]) Delete(k K) error {
	chain, n := m.find(k)
	if n == nil {
		return keyNotFound(k)
	}
	chain.Unlink(n)
	m.size--
	return nil
}

func (m *ChainedMap[K, V]) grow() {
	from := len(m.buckets)
	to := from + m.growStep
	switch m.growPolicy {
	case GrowRehash:
		buckets := make([]internal.Chain[K, V], to)
		for i := range m.buckets {
			m.buckets[i].MoveTo(func(n *internal.Node[K, V]) *internal.Chain[K, V] {
				return &buckets[mathutil.Mod(m.hash(n.Key), to)]
			})
		}
		m.buckets = buckets
		m.gens.reset(to)
	default:
		m.buckets = append(m.buckets, make([]internal.Chain[K, V], m.growStep)...)
		m.gens.push(to)
	}
	m.log.WithFields(log.Fields{
		"from":   from,
		"to":     to,
		"size":   m.size,
		"policy": m.growPolicy,
	}).Debug("buckets grown")
}

func (m *ChainedMap[K, V]) Size() int {
	return m.size
}

func (m *ChainedMap[K, V]) BucketCount() int {
	return len(m.buckets)
}

func (m *ChainedMap[K, V]) LoadFactor() float64 {
	return float64(m.size) / float64(len(m.buckets))
}

// All yields entries bucket by bucket, each chain from head to tail.
func (m *ChainedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.buckets {
			for n := m.buckets[i].Head(); n != nil; n = n.Next() {
				if !yield(n.Key, n.Value) {
					return
				}
			}
		}
	}
}

func (m *ChainedMap[K, V]) Keys() []K {
	return collectKeys(m.All(), m.size)
}

func (m *ChainedMap[K, V]) Values() []V {
	return collectValues(m.All(), m.size)
}

// Validate checks chain links, the cached size, key uniqueness and that every key
// sits in one of its home buckets.
func (m *ChainedMap[K, V]) Validate() error {
	var err error
	seen := make(map[K]struct{}, m.size)
	count := 0
	for i := range m.buckets {
		chain := &m.buckets[i]
		if !chain.Consistent() {
			err = multierr.Append(err, errors.WithMessagef(ErrInvariantViolation, "bucket %d: broken links", i))
		}
		count += chain.Size()
		for n := chain.Head(); n != nil; n = n.Next() {
			if _, dup := seen[n.Key]; dup {
				err = multierr.Append(err, errors.WithMessagef(ErrInvariantViolation, "key %v: duplicated", n.Key))
			}
			seen[n.Key] = struct{}{}
			home := false
			for idx := range m.gens.homes(m.hash(n.Key)) {
				if idx == i {
					home = true
					break
				}
			}
			if !home {
				err = multierr.Append(err, errors.WithMessagef(ErrInvariantViolation, "key %v: stored in foreign bucket %d", n.Key, i))
			}
		}
	}
	if count != m.size {
		err = multierr.Append(err, errors.WithMessagef(ErrInvariantViolation, "size %d, counted %d", m.size, count))
	}
	return err
}

func (m *ChainedMap[K, V]) String() string {
	var sb strings.Builder
	for i := range m.buckets {
		sb.WriteString(fmt.Sprintf("%d:", i))
		for n := m.buckets[i].Head(); n != nil; n = n.Next() {
			sb.WriteString(fmt.Sprintf("(%v,%v)->", n.Key, n.Value))
		}
		sb.WriteString("NULL\n")
	}
	return sb.String()
}
