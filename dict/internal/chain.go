package internal

// Node is an entry of a Chain. Key is immutable once linked.
type Node[K comparable, V any] struct {
	Key   K
	Value V
	next  *Node[K, V]
	prev  *Node[K, V]
}

func (n *Node[K, V]) Next() *Node[K, V] {
	return n.next
}

// Chain is a doubly linked list of nodes, the bucket of a separate chaining table.
// The zero value is an empty chain.
type Chain[K comparable, V any] struct {
	head *Node[K, V]
	size int
}

func (c *Chain[K, V]) Head() *Node[K, V] {
	return c.head
}

func (c *Chain[K, V]) Size() int {
	return c.size
}

func (c *Chain[K, V]) Find(k K) *Node[K, V] {
	for n := c.head; n != nil; n = n.next {
		if n.Key == k {
			return n
		}
	}
	return nil
}

func (c *Chain[K, V]) PushFront(k K, v V) *Node[K, V] {
	n := &Node[K, V]{
		Key:   k,
		Value: v,
	}
	c.pushFrontNode(n)
	return n
}

func (c *Chain[K, V]) pushFrontNode(n *Node[K, V]) {
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	c.size++
}

// Unlink splices n out of the chain. n must belong to c.
func (c *Chain[K, V]) Unlink(n *Node[K, V]) {
	switch {
	case n.prev == nil:
		c.head = n.next
		if n.next != nil {
			n.next.prev = nil
		}
	case n.next == nil:
		n.prev.next = nil
	default:
		n.prev.next = n.next
		n.next.prev = n.prev
	}
	n.next = nil
	n.prev = nil
	c.size--
}

// MoveTo unlinks every node of c and pushes it onto the chain picked by dst.
// Nodes keep their identity.
func (c *Chain[K, V]) MoveTo(dst func(n *Node[K, V]) *Chain[K, V]) {
	for n := c.head; n != nil; {
		next := n.next
		c.Unlink(n)
		dst(n).pushFrontNode(n)
		n = next
	}
}

// Consistent reports whether the prev links mirror the next links and the cached
// size matches the number of nodes.
func (c *Chain[K, V]) Consistent() bool {
	count := 0
	var prev *Node[K, V]
	for n := c.head; n != nil; n = n.next {
		if n.prev != prev {
			return false
		}
		prev = n
		count++
	}
	return count == c.size
}
