package dict

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/tuannh982/hashdict/dict/hashing"
	mathutil "github.com/tuannh982/hashdict/utils/math"
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotTombstone
)

// OpenAddressMap is a hash map resolving collisions by linear probing. Keys and
// values live in parallel arrays. Deleted slots become tombstones so probe chains
// running through them stay intact.
type OpenAddressMap[K comparable, V any] struct {
	keys       []K
	values     []V
	states     []slotState
	size       int
	tombstones int
	gens       generations
	hash       hashing.HashFunc[K]
	maxLoad    float64
	growStep   int
	growPolicy GrowPolicy
	log        *log.Entry
}

func NewOpenAddressMap[K comparable, V any](opts ...Option[K]) *OpenAddressMap[K, V] {
	o := newOptions("open_address_map", opts)
	return &OpenAddressMap[K, V]{
		keys:       make([]K, o.capacity),
		values:     make([]V, o.capacity),
		states:     make([]slotState, o.capacity),
		gens:       newGenerations(o.capacity),
		hash:       o.hash,
		maxLoad:    o.maxLoad,
		growStep:   o.growStep,
		growPolicy: o.growPolicy,
		log:        o.log,
	}
}

// locate returns the slot holding k, or -1. Each capacity the table has had is
// probed from its own home index, wrapping at that capacity, and no further than
// the longest probe distance of the insertions made under it.
func (m *OpenAddressMap[K, V]) locate(k K) int {
	h := m.hash(k)
	for i := len(m.gens) - 1; i >= 0; i-- {
		g := m.gens[i]
		start := mathutil.Mod(h, g.capacity)
		limit := min(g.maxProbe+1, g.capacity)
	probe:
		for step := 0; step < limit; step++ {
			pos := (start + step) % g.capacity
			switch m.states[pos] {
			case slotEmpty:
				break probe
			case slotOccupied:
				if m.keys[pos] == k {
					return pos
				}
			}
		}
	}
	return -1
}

// probeInsert finds where a key known to be absent goes: the first tombstone on its
// probe chain, else the empty slot ending the chain. It also returns the probe
// distance of that slot from the home index.
func (m *OpenAddressMap[K, V]) probeInsert(k K) (pos int, distance int, ok bool) {
	capacity := len(m.keys)
	start := mathutil.Mod(m.hash(k), capacity)
	tombstone := -1
	for step := 0; step < capacity; step++ {
		pos = (start + step) % capacity
		switch m.states[pos] {
		case slotEmpty:
			if tombstone >= 0 {
				return (start + tombstone) % capacity, tombstone, true
			}
			return pos, step, true
		case slotTombstone:
			if tombstone < 0 {
				tombstone = step
			}
		}
	}
	if tombstone < 0 {
		return -1, 0, false
	}
	return (start + tombstone) % capacity, tombstone, true
}

// place stores an entry at pos, found by probeInsert at the given distance.
func (m *OpenAddressMap[K, V]) place(pos, distance int, k K, v V) {
	m.keys[pos] = k
	m.values[pos] = v
	m.states[pos] = slotOccupied
	m.gens.observe(distance)
}

func (m *OpenAddressMap[K, V]) Contains(k K) bool {
	return m.locate(k) >= 0
}

func (m *OpenAddressMap[K, V]) Get(k K) (v V, err error) {
	pos := m.locate(k)
	if pos < 0 {
		return v, keyNotFound(k)
	}
	return m.values[pos], nil
}

func (m *OpenAddressMap[K, V]) Set(k K, v V) error {
	if pos := m.locate(k); pos >= 0 {
		m.values[pos] = v
		return nil
	}
	if m.growStep > 0 && m.exceedsLoad(len(m.keys)) {
		m.grow()
	}
	pos, distance, ok := m.probeInsert(k)
	if !ok {
		m.log.WithFields(log.Fields{
			"key":      k,
			"capacity": len(m.keys),
		}).Warn("no usable slot")
		return errors.WithMessagef(ErrTableFull, "key %v, capacity %d", k, len(m.keys))
	}
	if m.states[pos] == slotTombstone {
		m.tombstones--
	}
	m.place(pos, distance, k, v)
	m.size++
	return nil
}

func (m *OpenAddressMap[K, V]) Delete(k K) error {
	pos := m.locate(k)
	if pos < 0 {
		return keyNotFound(k)
	}
	var (
		zeroK K
		zeroV V
	)
	m.keys[pos] = zeroK
	m.values[pos] = zeroV
	m.states[pos] = slotTombstone
	m.size--
	m.tombstones++
	return nil
}

// exceedsLoad reports whether one more used slot would reach the maximum load
// factor at the given capacity. Tombstones count as used.
func (m *OpenAddressMap[K, V]) exceedsLoad(capacity int) bool {
	return float64(m.size+m.tombstones+1)/float64(capacity) >= m.maxLoad
}

func (m *OpenAddressMap[K, V]) grow() {
	from := len(m.keys)
	used := m.size + m.tombstones + 1
	minCapacity := int(float64(used)/m.maxLoad) + 1
	to := from
	if minCapacity > from {
		to += mathutil.DivCeil(minCapacity-from, m.growStep) * m.growStep
	}
	for m.exceedsLoad(to) {
		to += m.growStep
	}
	switch m.growPolicy {
	case GrowRehash:
		keys, values, states := m.keys, m.values, m.states
		m.keys = make([]K, to)
		m.values = make([]V, to)
		m.states = make([]slotState, to)
		m.tombstones = 0
		m.gens.reset(to)
		for i := range states {
			if states[i] != slotOccupied {
				continue
			}
			pos, distance, _ := m.probeInsert(keys[i])
			m.place(pos, distance, keys[i], values[i])
		}
	default:
		m.keys = append(m.keys, make([]K, to-from)...)
		m.values = append(m.values, make([]V, to-from)...)
		m.states = append(m.states, make([]slotState, to-from)...)
		m.gens.push(to)
	}
	m.log.WithFields(log.Fields{
		"from":   from,
		"to":     to,
		"size":   m.size,
		"policy": m.growPolicy,
	}).Debug("slots grown")
}

func (m *OpenAddressMap[K, V]) Size() int {
	return m.size
}

func (m *OpenAddressMap[K, V]) Capacity() int {
	return len(m.keys)
}

func (m *OpenAddressMap[K, V]) Tombstones() int {
	return m.tombstones
}

// LoadFactor is the ratio of occupied slots to capacity, tombstones excluded.
func (m *OpenAddressMap[K, V]) LoadFactor() float64 {
	return float64(m.size) / float64(len(m.keys))
}

// All yields occupied slots in slot order.
func (m *OpenAddressMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.states {
			if m.states[i] == slotOccupied && !yield(m.keys[i], m.values[i]) {
				return
			}
		}
	}
}

func (m *OpenAddressMap[K, V]) Keys() []K {
	return collectKeys(m.All(), m.size)
}

func (m *OpenAddressMap[K, V]) Values() []V {
	return collectValues(m.All(), m.size)
}

// Validate checks the cached counters and that every stored key is reachable by
// probing and stored only once.
func (m *OpenAddressMap[K, V]) Validate() error {
	var err error
	occupied, tombstones := 0, 0
	for i, state := range m.states {
		switch state {
		case slotOccupied:
			occupied++
			if pos := m.locate(m.keys[i]); pos != i {
				err = multierr.Append(err, errors.WithMessagef(ErrInvariantViolation, "key %v: stored at %d, probed to %d", m.keys[i], i, pos))
			}
		case slotTombstone:
			tombstones++
		}
	}
	if occupied != m.size {
		err = multierr.Append(err, errors.WithMessagef(ErrInvariantViolation, "size %d, counted %d", m.size, occupied))
	}
	if tombstones != m.tombstones {
		err = multierr.Append(err, errors.WithMessagef(ErrInvariantViolation, "tombstones %d, counted %d", m.tombstones, tombstones))
	}
	return err
}

func (m *OpenAddressMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("Key\t\tValue\n")
	for i, state := range m.states {
		switch state {
		case slotEmpty:
			sb.WriteString("<empty>\t\t<empty>\n")
		case slotTombstone:
			sb.WriteString("<deleted>\t\t<deleted>\n")
		default:
			sb.WriteString(fmt.Sprintf("%v\t\t%v\n", m.keys[i], m.values[i]))
		}
	}
	return sb.String()
}
