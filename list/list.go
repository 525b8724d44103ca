/*
Package list implements a doubly linked list whose nodes live in an arena
and link to each other by integer handles instead of pointers.

A List is not safe for concurrent use. Callers sharing a list between
goroutines must serialize every call.
*/
package list

import (
	"errors"
	"fmt"
	"strings"
)

// List is a doubly linked list.
//
// The zero value is a ready to use empty list.
type List[V any] struct {
	arena arena[V]
	head  handle
	tail  handle
	len   int
}

// New creates an empty list configured with opts.
func New[V any](opts ...Option) *List[V] {
	o := newDefaultListOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	l := &List[V]{}
	l.arena.max = o.maxLen

	if c := o.capacity; c > 0 {
		if o.maxLen > 0 && c > o.maxLen {
			c = o.maxLen
		}
		l.arena.nodes = make([]node[V], 0, c)
	}

	return l
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// IsEmpty reports whether the list has no elements.
func (l *List[V]) IsEmpty() bool {
	return l.len == 0
}

// Front returns the first value of the list.
func (l *List[V]) Front() (value V, ok bool) {
	if l.head == 0 {
		return value, false
	}
	return l.arena.get(l.head).value, true
}

// Back returns the last value of the list.
func (l *List[V]) Back() (value V, ok bool) {
	if l.tail == 0 {
		return value, false
	}
	return l.arena.get(l.tail).value, true
}

// PushFront inserts a value at the front of list l.
func (l *List[V]) PushFront(value V) error {
	h, err := l.arena.alloc(value)
	if err != nil {
		return fmt.Errorf("push front: %w", err)
	}

	n := l.arena.get(h)
	n.next = l.head

	if l.head == 0 {
		l.tail = h
	} else {
		l.arena.get(l.head).prev = h
	}

	l.head = h
	l.len++

	return nil
}

// PushBack inserts a value at the back of list l.
func (l *List[V]) PushBack(value V) error {
	h, err := l.arena.alloc(value)
	if err != nil {
		return fmt.Errorf("push back: %w", err)
	}

	n := l.arena.get(h)
	n.prev = l.tail

	if l.tail == 0 {
		l.head = h
	} else {
		l.arena.get(l.tail).next = h
	}

	l.tail = h
	l.len++

	return nil
}

// PopFront removes the first element and returns its value.
// It returns false if the list is empty.
func (l *List[V]) PopFront() (value V, ok bool) {
	if l.head == 0 {
		return value, false
	}

	h := l.head
	l.unlink(h)

	return l.arena.release(h), true
}

// PopBack removes the last element and returns its value.
// It returns false if the list is empty.
func (l *List[V]) PopBack() (value V, ok bool) {
	if l.tail == 0 {
		return value, false
	}

	h := l.tail
	l.unlink(h)

	return l.arena.release(h), true
}

// PushAt inserts a value so that it ends up at position index.
// An index of Len() appends the value.
// The list is unchanged when an error is returned.
func (l *List[V]) PushAt(value V, index int) error {
	if index < 0 || index > l.len {
		return fmt.Errorf("push at %d with length %d: %w", index, l.len, ErrIndexOutOfBounds)
	}

	switch {
	case index == 0 || l.head == 0:
		return l.PushFront(value)

	case index == l.len:
		return l.PushBack(value)
	}

	mark, err := l.seek(index)
	if err != nil {
		return fmt.Errorf("push at %d: %w", index, err)
	}

	h, err := l.arena.alloc(value)
	if err != nil {
		return fmt.Errorf("push at %d: %w", index, err)
	}

	l.linkBefore(h, mark)

	return nil
}

// PopAt removes the element at position index and returns its value.
// An index of Len() removes the last element. It returns false without
// an error if the list is empty.
// The list is unchanged when an error is returned.
func (l *List[V]) PopAt(index int) (value V, ok bool, err error) {
	if index < 0 || index > l.len {
		return value, false, fmt.Errorf("pop at %d with length %d: %w", index, l.len, ErrIndexOutOfBounds)
	}

	switch {
	case index == 0 || l.head == 0:
		value, ok = l.PopFront()
		return value, ok, nil

	case index == l.len:
		value, ok = l.PopBack()
		return value, ok, nil
	}

	h, err := l.seek(index)
	if err != nil {
		return value, false, fmt.Errorf("pop at %d: %w", index, err)
	}

	l.unlink(h)

	return l.arena.release(h), true, nil
}

// Do calls function f on each value of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(value V) bool) {
	for h := l.head; h != 0; {
		n := l.arena.get(h)
		if !f(n.value) {
			return
		}
		h = n.next
	}
}

// DoReverse is like Do but iterates from the back of the list.
func (l *List[V]) DoReverse(f func(value V) bool) {
	for h := l.tail; h != 0; {
		n := l.arena.get(h)
		if !f(n.value) {
			return
		}
		h = n.prev
	}
}

// Values returns the values of the list in forward order.
func (l *List[V]) Values() []V {
	values := make([]V, 0, l.len)

	l.Do(func(value V) bool {
		values = append(values, value)
		return true
	})

	return values
}

// String renders the values in forward order as "[a, b, c]".
func (l *List[V]) String() string {
	var b strings.Builder

	b.WriteByte('[')

	first := true
	l.Do(func(value V) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprint(&b, value)
		return true
	})

	b.WriteByte(']')

	return b.String()
}

// Clear removes all elements and releases their storage.
func (l *List[V]) Clear() {
	l.arena.reset()
	l.head = 0
	l.tail = 0
	l.len = 0
}

// Release removes every element from the front of the list and passes its
// value to f. Errors and panics from f do not stop the release of the
// remaining elements; they are returned joined.
func (l *List[V]) Release(f func(value V) error) error {
	var errs []error

	for {
		value, ok := l.PopFront()
		if !ok {
			break
		}

		if err := releaseValue(f, value); err != nil {
			errs = append(errs, err)
		}
	}

	l.Clear()

	return errors.Join(errs...)
}

func releaseValue[V any](f func(V) error, value V) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("list: release panicked: %v", r)
		}
	}()

	return f(value)
}

// seek walks index steps from the front and returns the node found there.
func (l *List[V]) seek(index int) (handle, error) {
	h := l.head
	for i := 0; i < index; i++ {
		if h == 0 {
			return 0, ErrIndexOutOfBounds
		}
		h = l.arena.get(h).next
	}

	if h == 0 {
		return 0, ErrIndexOutOfBounds
	}

	return h, nil
}

// linkBefore links the unlinked node h in front of the interior node mark.
func (l *List[V]) linkBefore(h, mark handle) {
	m := l.arena.get(mark)
	prev := m.prev
	if prev == 0 {
		panic("list: interior node has no previous node")
	}

	n := l.arena.get(h)
	n.prev = prev
	n.next = mark
	m.prev = h
	l.arena.get(prev).next = h
	l.len++
}

// unlink detaches h from its neighbors and the list anchors.
func (l *List[V]) unlink(h handle) {
	n := l.arena.get(h)

	if n.prev == 0 {
		l.head = n.next
	} else {
		l.arena.get(n.prev).next = n.next
	}

	if n.next == 0 {
		l.tail = n.prev
	} else {
		l.arena.get(n.next).prev = n.prev
	}

	n.next = 0
	n.prev = 0
	l.len--
}

// verify walks the raw links in both directions and reports the first
// broken invariant.
func (l *List[V]) verify() error {
	if (l.head == 0) != (l.tail == 0) || (l.head == 0) != (l.len == 0) {
		return fmt.Errorf("anchors head=%d tail=%d disagree with length %d", l.head, l.tail, l.len)
	}

	if l.arena.live() != l.len {
		return fmt.Errorf("arena holds %d live nodes, length is %d", l.arena.live(), l.len)
	}

	if l.head == 0 {
		return nil
	}

	if p := l.arena.get(l.head).prev; p != 0 {
		return fmt.Errorf("head %d has previous node %d", l.head, p)
	}

	if n := l.arena.get(l.tail).next; n != 0 {
		return fmt.Errorf("tail %d has next node %d", l.tail, n)
	}

	forward := make([]handle, 0, l.len)
	for h := l.head; h != 0; h = l.arena.get(h).next {
		if len(forward) == l.len {
			return fmt.Errorf("more than %d nodes reachable from head", l.len)
		}

		n := l.arena.get(h)
		if !n.live {
			return fmt.Errorf("node %d is linked but released", h)
		}

		if n.next != 0 && l.arena.get(n.next).prev != h {
			return fmt.Errorf("node %d links to %d which links back to %d", h, n.next, l.arena.get(n.next).prev)
		}

		forward = append(forward, h)
	}

	if len(forward) != l.len {
		return fmt.Errorf("%d nodes reachable from head, length is %d", len(forward), l.len)
	}

	i := len(forward) - 1
	for h := l.tail; h != 0; h = l.arena.get(h).prev {
		if i < 0 || forward[i] != h {
			return fmt.Errorf("backward walk diverges at node %d", h)
		}
		i--
	}

	if i != -1 {
		return fmt.Errorf("%d nodes reachable from tail, length is %d", len(forward)-1-i, l.len)
	}

	return nil
}
