package sample

import "sync"

// RingBuffer keeps the newest Cap items added to it. It is safe for
// concurrent use.
type RingBuffer[T any] struct {
	mu    sync.RWMutex
	items []T
	// next is the slot the following Add overwrites once the buffer is full
	next int
}

// NewRingBuffer creates an empty buffer holding at most capacity items.
// A capacity below one is treated as one.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &RingBuffer[T]{items: make([]T, 0, capacity)}
}

// Add appends item, evicting the oldest item when the buffer is full.
func (r *RingBuffer[T]) Add(item T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) < cap(r.items) {
		r.items = append(r.items, item)
		return
	}
	r.items[r.next] = item
	r.next = (r.next + 1) % len(r.items)
}

// Len returns the number of items held.
func (r *RingBuffer[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Cap returns the maximum number of items held.
func (r *RingBuffer[T]) Cap() int {
	return cap(r.items)
}

// All returns a copy of the items, oldest first.
func (r *RingBuffer[T]) All() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, 0, len(r.items))
	out = append(out, r.items[r.next:]...)
	return append(out, r.items[:r.next]...)
}

// Reset drops every item and keeps the storage.
func (r *RingBuffer[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.items)
	r.items = r.items[:0]
	r.next = 0
}
