package kernel

import "sync"

// Ringbuffer is a bounded, concurrency-safe FIFO of capacity N. Once full,
// PushBack evicts the oldest element before appending the new one: it never
// blocks and never grows past its capacity. Frontends push from their own
// goroutine while the backend's single-threaded step loop drains it, so
// every operation takes an internal lock.
type Ringbuffer[T any] struct {
	mu       sync.Mutex
	items    []T
	capacity int
}

// NewRingbuffer creates a Ringbuffer with room for capacity elements.
func NewRingbuffer[T any](capacity int) *Ringbuffer[T] {
	return &Ringbuffer[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

// PushBack appends value, evicting the oldest element first if the buffer is
// already at capacity.
func (r *Ringbuffer[T]) PushBack(value T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) >= r.capacity {
		r.items = r.items[1:]
	}
	r.items = append(r.items, value)
}

// PopFront removes and returns the oldest element, or false if empty.
func (r *Ringbuffer[T]) PopFront() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero T
	if len(r.items) == 0 {
		return zero, false
	}
	v := r.items[0]
	r.items = r.items[1:]
	return v, true
}

// DrainAndPopLatest removes every buffered element and returns the most
// recently pushed one, or false if the buffer was empty.
func (r *Ringbuffer[T]) DrainAndPopLatest() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero T
	if len(r.items) == 0 {
		return zero, false
	}
	latest := r.items[len(r.items)-1]
	r.items = r.items[:0]
	return latest, true
}

// DrainAndPopRange removes and returns the elements in [start, end), clamped
// to the buffer's current bounds.
func (r *Ringbuffer[T]) DrainAndPopRange(start, end int) []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	start, end = clampRange(start, end, len(r.items))
	if start >= end {
		return nil
	}
	out := make([]T, end-start)
	copy(out, r.items[start:end])
	r.items = append(r.items[:start], r.items[end:]...)
	return out
}

// PeekRange clones the elements in [start, end) without mutating the buffer.
func (r *Ringbuffer[T]) PeekRange(start, end int) []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	start, end = clampRange(start, end, len(r.items))
	if start >= end {
		return nil
	}
	out := make([]T, end-start)
	copy(out, r.items[start:end])
	return out
}

// Len returns the number of buffered elements.
func (r *Ringbuffer[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Capacity returns the maximum number of elements the buffer holds.
func (r *Ringbuffer[T]) Capacity() int {
	return r.capacity
}

// IsEmpty reports whether the buffer currently holds no elements.
func (r *Ringbuffer[T]) IsEmpty() bool {
	return r.Len() == 0
}

func clampRange(start, end, n int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	return start, end
}

// Clocked pairs a virtual-clock timestamp with a value, the element type
// used by every output channel (frames, audio samples, text lines) so
// consumers can tell when each value was produced.
type Clocked[T any] struct {
	Clock Instant
	Value T
}

// ClockedRingbuffer is a Ringbuffer of (Instant, T) pairs.
type ClockedRingbuffer[T any] struct {
	*Ringbuffer[Clocked[T]]
}

// NewClockedRingbuffer creates a ClockedRingbuffer with room for capacity
// elements.
func NewClockedRingbuffer[T any](capacity int) *ClockedRingbuffer[T] {
	return &ClockedRingbuffer[T]{Ringbuffer: NewRingbuffer[Clocked[T]](capacity)}
}

// PushBack appends a (clock, value) pair, evicting the oldest pair first if
// the buffer is already at capacity.
func (c *ClockedRingbuffer[T]) PushBack(clock Instant, value T) {
	c.Ringbuffer.PushBack(Clocked[T]{Clock: clock, Value: value})
}
