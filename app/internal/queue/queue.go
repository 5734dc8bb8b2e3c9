// SPDX-License-Identifier: Unlicense OR MIT

// Package queue provides an unbounded FIFO queue with non-blocking
// receive, used to pass events, redraw requests and window requests
// to the toolkit thread.
package queue

import (
	"errors"
	"sync"
)

// ErrClosed is returned by Send after Close.
var ErrClosed = errors.New("queue: send on closed queue")

// initialSize is the initial size of the circular buffer. It must be a
// power of 2.
const initialSize = 16

// Queue is a multi-producer, single-consumer FIFO. Send never blocks
// on the consumer, so producers running on the toolkit thread cannot
// deadlock against the loop that drains the queue.
type Queue[T any] struct {
	mu     sync.Mutex
	buf    []T
	head   int
	tail   int
	closed bool
	notify func()
}

// New returns an empty queue. If notify is not nil, it is called
// after every successful Send, outside the queue lock.
func New[T any](notify func()) *Queue[T] {
	return &Queue[T]{
		buf:    make([]T, initialSize),
		notify: notify,
	}
}

// Send appends v to the queue. It returns ErrClosed if the queue was
// closed.
func (q *Queue[T]) Send(v T) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	// Allocate a bigger buffer if necessary.
	if q.tail-q.head == len(q.buf) {
		mask := len(q.buf) - 1
		b := make([]T, 2*len(q.buf))
		n := copy(b, q.buf[q.head&mask:])
		copy(b[n:], q.buf[:q.head&mask])
		q.head, q.tail = 0, len(q.buf)
		q.buf = b
	}
	q.buf[q.tail&(len(q.buf)-1)] = v
	q.tail++
	notify := q.notify
	q.mu.Unlock()
	if notify != nil {
		notify()
	}
	return nil
}

// TryRecv removes and returns the oldest element. It reports false
// if the queue is empty. Elements sent before Close remain
// receivable.
func (q *Queue[T]) TryRecv() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var zero T
	if q.head == q.tail {
		return zero, false
	}
	i := q.head & (len(q.buf) - 1)
	v := q.buf[i]
	q.buf[i] = zero
	q.head++
	return v, true
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.tail - q.head
}

// Empty reports whether the queue has no elements.
func (q *Queue[T]) Empty() bool {
	return q.Len() == 0
}

// Close makes further sends fail. It is safe to call Close more
// than once.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
}
