package ring

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/embedlog/sinker/backend"
	"github.com/embedlog/sinker/core"
)

// Buffer is a fixed-capacity multi-producer, single-consumer queue of log
// records with a drop-oldest overflow policy. When the buffer is full a push
// evicts the oldest unread record instead of failing, so producers never
// block and never observe an error.
//
// If a backend is supplied, Pop blocks on a binary semaphore until a record
// is available or the timeout elapses. The signaling scheme (re-signal after
// a pop while records remain) is only correct for a single consumer.
type Buffer struct {
	mu    sync.Mutex
	slots []core.Record
	head  int
	tail  int
	count int

	dropped atomic.Uint64

	sem backend.Semaphore
}

// New creates a buffer with the given capacity. A non-positive capacity is
// clamped to one. If be is nil the buffer never blocks: Pop returns
// immediately when empty regardless of timeout.
func New(capacity int, be backend.Backend) *Buffer {
	if capacity <= 0 {
		capacity = 1
	}
	b := &Buffer{slots: make([]core.Record, capacity)}
	if be != nil {
		b.sem = be.NewBinarySemaphore()
	}
	return b
}

// Push stores a record, evicting the oldest unread record if the buffer is
// full. It returns false iff an eviction happened; the return value is a
// metrics signal, not an error, and the push itself always succeeds.
func (b *Buffer) Push(rec core.Record) bool {
	b.mu.Lock()
	evicted := false
	if b.count == len(b.slots) {
		b.tail = (b.tail + 1) % len(b.slots)
		b.count--
		b.dropped.Add(1)
		evicted = true
	}
	b.slots[b.head] = rec
	b.head = (b.head + 1) % len(b.slots)
	b.count++
	b.mu.Unlock()

	if b.sem != nil {
		b.sem.Give()
	}
	return !evicted
}

// Pop removes and returns the oldest record. With a backend it waits up to
// timeout for a record to arrive; without one it is non-blocking. The second
// return value is false when nothing was available within the timeout.
func (b *Buffer) Pop(timeout time.Duration) (core.Record, bool) {
	if b.sem != nil && !b.sem.Take(timeout) {
		return core.Record{}, false
	}

	b.mu.Lock()
	if b.count == 0 {
		b.mu.Unlock()
		return core.Record{}, false
	}
	rec := b.slots[b.tail]
	b.slots[b.tail] = core.Record{}
	b.tail = (b.tail + 1) % len(b.slots)
	b.count--
	remaining := b.count
	b.mu.Unlock()

	// Keep the invariant "signal pending whenever records remain" alive
	// for the next single-consumer pop.
	if remaining > 0 && b.sem != nil {
		b.sem.Give()
	}
	return rec, true
}

// Len returns the number of records currently queued.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

// Empty reports whether the buffer holds no records.
func (b *Buffer) Empty() bool {
	return b.Len() == 0
}

// Capacity returns the fixed capacity set at construction.
func (b *Buffer) Capacity() int {
	return len(b.slots)
}

// Dropped returns the total number of records evicted since creation.
func (b *Buffer) Dropped() uint64 {
	return b.dropped.Load()
}

// Signal wakes a consumer blocked in Pop without enqueueing anything.
// Used to deliver shutdown requests to the worker promptly.
func (b *Buffer) Signal() {
	if b.sem != nil {
		b.sem.Give()
	}
}

// Close releases the wait primitive. The buffer must not be used afterwards.
func (b *Buffer) Close() {
	if b.sem != nil {
		b.sem.Close()
	}
}
