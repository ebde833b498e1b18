package collections

import (
	"fmt"
	"strings"
)

type LinkedList[V comparable] interface {
	Prepend(v V)
	Remove(v V) bool
	Contains(v V) bool
	Size() int
	Entries() []V
	String() string
}

type linkedNode[V comparable] struct {
	item V
	next *linkedNode[V]
}

type linkedList[V comparable] struct {
	head *linkedNode[V]
	size int
}

func NewLinkedList[V comparable]() LinkedList[V] {
	return &linkedList[V]{}
}

func (l *linkedList[V]) Prepend(v V) {
	l.head = &linkedNode[V]{
		item: v,
		next: l.head,
	}
	l.size++
}

// Remove unlinks the first node holding v and reports whether one was found.
func (l *linkedList[V]) Remove(v V) bool {
	var prev *linkedNode[V]
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.item == v {
			if prev == nil {
				l.head = cur.next
			} else {
				prev.next = cur.next
			}
			l.size--
			return true
		}
		prev = cur
	}
	return false
}

func (l *linkedList[V]) Contains(v V) bool {
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.item == v {
			return true
		}
	}
	return false
}

func (l *linkedList[V]) Size() int {
	return l.size
}

func (l *linkedList[V]) Entries() []V {
	arr := make([]V, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		arr = append(arr, cur.item)
	}
	return arr
}

func (l *linkedList[V]) String() string {
	items := make([]string, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		items = append(items, fmt.Sprint(cur.item))
	}
	return "List:" + strings.Join(items, "->")
}
