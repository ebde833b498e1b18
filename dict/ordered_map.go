package dict

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"golang.org/x/exp/constraints"

	"github.com/tuannh982/hashdict/utils/collections"
)

type node[K, V any] struct {
	key    K
	value  V
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V] // not an owner, only used to splice nodes out
}

// OrderedMap is a map kept as an unbalanced binary search tree. Insertion order
// decides the shape: sorted insertions degrade it to a list.
type OrderedMap[K, V any] struct {
	root *node[K, V]
	size int
	cmp  func(a, b K) int
}

func NewOrderedMap[K constraints.Ordered, V any]() *OrderedMap[K, V] {
	return NewOrderedMapFunc[K, V](compare[K])
}

// NewOrderedMapFunc returns an OrderedMap ordered by cmp, which must define a strict
// total order: negative when a < b, positive when a > b, zero when equal.
func NewOrderedMapFunc[K, V any](cmp func(a, b K) int) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		cmp: cmp,
	}
}

func compare[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (m *OrderedMap[K, V]) find(k K) *node[K, V] {
	x := m.root
	for x != nil {
		c := m.cmp(k, x.key)
		switch {
		case c < 0:
			x = x.left
		case c > 0:
			x = x.right
		default:
			return x
		}
	}
	return nil
}

func (m *OrderedMap[K, V]) Contains(k K) bool {
	return m.find(k) != nil
}

func (m *OrderedMap[K, V]) Get(k K) (v V, err error) {
	x := m.find(k)
	if x == nil {
		return v, keyNotFound(k)
	}
	return x.value, nil
}

// Set never fails, the error is there to satisfy Map.
func (m *OrderedMap[K, V]) Set(k K, v V) error {
	var parent *node[K, V]
	x := m.root
	c := 0
	for x != nil {
		parent = x
		c = m.cmp(k, x.key)
		switch {
		case c < 0:
			x = x.left
		case c > 0:
			x = x.right
		default:
			x.value = v
			return nil
		}
	}
	z := &node[K, V]{
		key:    k,
		value:  v,
		parent: parent,
	}
	switch {
	case parent == nil:
		m.root = z
	case c < 0:
		parent.left = z
	default:
		parent.right = z
	}
	m.size++
	return nil
}

func (m *OrderedMap[K, V]) Delete(k K) error {
	z := m.find(k)
	if z == nil {
		return keyNotFound(k)
	}
	switch {
	case z.left == nil:
		m.transplant(z, z.right)
	case z.right == nil:
		m.transplant(z, z.left)
	default:
		y := minimum(z.right)
		if y.parent != z {
			m.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		m.transplant(z, y)
		y.left = z.left
		y.left.parent = y
	}
	z.left, z.right, z.parent = nil, nil, nil
	m.size--
	return nil
}

// transplant puts subtree v in the position of subtree u. v may be nil.
func (m *OrderedMap[K, V]) transplant(u, v *node[K, V]) {
	switch {
	case u.parent == nil:
		m.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

func minimum[K, V any](x *node[K, V]) *node[K, V] {
	for x.left != nil {
		x = x.left
	}
	return x
}

func maximum[K, V any](x *node[K, V]) *node[K, V] {
	for x.right != nil {
		x = x.right
	}
	return x
}

func (m *OrderedMap[K, V]) Min() (k K, v V, ok bool) {
	if m.root == nil {
		return k, v, false
	}
	x := minimum(m.root)
	return x.key, x.value, true
}

func (m *OrderedMap[K, V]) Max() (k K, v V, ok bool) {
	if m.root == nil {
		return k, v, false
	}
	x := maximum(m.root)
	return x.key, x.value, true
}

func (m *OrderedMap[K, V]) Size() int {
	return m.size
}

func (m *OrderedMap[K, V]) Height() int {
	return height(m.root)
}

func height[K, V any](x *node[K, V]) int {
	if x == nil {
		return 0
	}
	return max(height(x.left), height(x.right)) + 1
}

func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return m.Inorder()
}

// Items yields the entries in ascending key order.
func (m *OrderedMap[K, V]) Items() iter.Seq2[K, V] {
	return m.Inorder()
}

func (m *OrderedMap[K, V]) Inorder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		s := collections.NewStack[*node[K, V]]()
		x := m.root
		for x != nil || !s.IsEmpty() {
			for x != nil {
				s.Push(x)
				x = x.left
			}
			x, _ = s.Pop()
			if !yield(x.key, x.value) {
				return
			}
			x = x.right
		}
	}
}

func (m *OrderedMap[K, V]) Preorder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.root == nil {
			return
		}
		s := collections.NewStack[*node[K, V]]()
		s.Push(m.root)
		for !s.IsEmpty() {
			x, _ := s.Pop()
			if !yield(x.key, x.value) {
				return
			}
			if x.right != nil {
				s.Push(x.right)
			}
			if x.left != nil {
				s.Push(x.left)
			}
		}
	}
}

func (m *OrderedMap[K, V]) Postorder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		s := collections.NewStack[*node[K, V]]()
		var last *node[K, V]
		x := m.root
		for x != nil || !s.IsEmpty() {
			if x != nil {
				s.Push(x)
				x = x.left
				continue
			}
			top, _ := s.Peek()
			if top.right != nil && top.right != last {
				x = top.right
				continue
			}
			if !yield(top.key, top.value) {
				return
			}
			last, _ = s.Pop()
		}
	}
}

// LevelOrder yields the entries breadth first, left to right within a level.
func (m *OrderedMap[K, V]) LevelOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.root == nil {
			return
		}
		q := collections.NewQueue[*node[K, V]]()
		q.Push(m.root)
		for !q.IsEmpty() {
			x, _ := q.Pop()
			if !yield(x.key, x.value) {
				return
			}
			if x.left != nil {
				q.Push(x.left)
			}
			if x.right != nil {
				q.Push(x.right)
			}
		}
	}
}

func (m *OrderedMap[K, V]) Keys() []K {
	return collectKeys(m.Inorder(), m.size)
}

func (m *OrderedMap[K, V]) Values() []V {
	return collectValues(m.Inorder(), m.size)
}

// Validate checks the search tree order, the parent links and the cached size.
func (m *OrderedMap[K, V]) Validate() error {
	var err error
	if m.root != nil && m.root.parent != nil {
		err = multierr.Append(err, errors.WithMessagef(ErrInvariantViolation, "root %v: has a parent", m.root.key))
	}
	count := 0
	var prev *node[K, V]
	s := collections.NewStack[*node[K, V]]()
	x := m.root
	for x != nil || !s.IsEmpty() {
		for x != nil {
			for _, child := range []*node[K, V]{x.left, x.right} {
				if child != nil && child.parent != x {
					err = multierr.Append(err, errors.WithMessagef(ErrInvariantViolation, "node %v: parent link does not point to %v", child.key, x.key))
				}
			}
			s.Push(x)
			x = x.left
		}
		x, _ = s.Pop()
		count++
		if prev != nil && m.cmp(prev.key, x.key) >= 0 {
			err = multierr.Append(err, errors.WithMessagef(ErrInvariantViolation, "node %v: out of order after %v", x.key, prev.key))
		}
		prev = x
		x = x.right
	}
	if count != m.size {
		err = multierr.Append(err, errors.WithMessagef(ErrInvariantViolation, "size %d, counted %d", m.size, count))
	}
	return err
}

func (m *OrderedMap[K, V]) String() string {
	return fmt.Sprintf("inorder=%v preorder=%v", m.Keys(), collectKeys(m.Preorder(), m.size))
}
