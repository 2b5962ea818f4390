package dispatch

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sourcegraph/conc/panics"

	"github.com/embedlog/sinker/backend"
	"github.com/embedlog/sinker/core"
	"github.com/embedlog/sinker/ring"
	"github.com/embedlog/sinker/sink"
)

const (
	// DefaultQueueCapacity is the queue size used when Options leaves it zero.
	DefaultQueueCapacity = 64
	// DefaultFlushTimeout bounds the flush performed during Shutdown.
	DefaultFlushTimeout = 5 * time.Second

	popTimeout    = 50 * time.Millisecond
	pollInterval  = 10 * time.Millisecond
	shutdownGrace = 100 * time.Millisecond
)

// Metrics is a point-in-time snapshot of the async dispatch system. Each
// field is individually correct at the moment it was read; there is no
// consistency guarantee across fields.
type Metrics struct {
	DroppedCount uint64
	QueuedCount  int
	Capacity     int
	Running      bool
}

// Options configures a Sinker.
type Options struct {
	// Backend supplies semaphore and task primitives. Nil keeps the hub
	// synchronous; Init becomes a no-op.
	Backend backend.Backend
	// QueueCapacity sizes the async queue (default DefaultQueueCapacity).
	QueueCapacity int
	// Fallback receives internal diagnostics such as drop notices and sink
	// panics (default os.Stderr). Diagnostics are never dispatched to sinks.
	Fallback io.Writer
	// FlushTimeout bounds the drain performed by Shutdown
	// (default DefaultFlushTimeout).
	FlushTimeout time.Duration
}

// Sinker is the hub that collects log records and fans each one out to all
// registered sinks, subject to severity filtering.
//
// Without a backend, or before Init, dispatch is synchronous: the record is
// delivered on the calling goroutine. After a successful Init, producers
// only enqueue and a single worker task delivers. Dispatch never blocks and
// never fails a producer: when consumers fall behind, the bounded queue
// evicts its oldest record and counts the drop.
type Sinker struct {
	level atomic.Int32

	mu    sync.Mutex
	sinks []sink.Sink

	queue    atomic.Pointer[ring.Buffer]
	running  atomic.Bool
	stopping atomic.Bool

	task       backend.Task
	workerDone chan struct{}

	be           backend.Backend
	capacity     int
	fallback     io.Writer
	flushTimeout time.Duration
}

// New constructs a hub in synchronous mode with the threshold at LevelInfo.
func New(opts Options) *Sinker {
	if opts.QueueCapacity <= 0 {
		opts.QueueCapacity = DefaultQueueCapacity
	}
	if opts.Fallback == nil {
		opts.Fallback = os.Stderr
	}
	if opts.FlushTimeout <= 0 {
		opts.FlushTimeout = DefaultFlushTimeout
	}
	s := &Sinker{
		be:           opts.Backend,
		capacity:     opts.QueueCapacity,
		fallback:     opts.Fallback,
		flushTimeout: opts.FlushTimeout,
	}
	s.level.Store(int32(core.LevelInfo))
	return s
}

// AddSink registers a sink. Dispatch order is registration order and
// duplicate registrations are allowed. Nil sinks are ignored.
func (s *Sinker) AddSink(sk sink.Sink) {
	if sk == nil {
		return
	}
	s.mu.Lock()
	s.sinks = append(s.sinks, sk)
	s.mu.Unlock()
}

// RemoveSink unregisters every registry entry equal to sk. Absent or nil
// sinks are a no-op.
func (s *Sinker) RemoveSink(sk sink.Sink) {
	if sk == nil {
		return
	}
	s.mu.Lock()
	kept := s.sinks[:0]
	for _, existing := range s.sinks {
		if existing != sk {
			kept = append(kept, existing)
		}
	}
	for i := len(kept); i < len(s.sinks); i++ {
		s.sinks[i] = nil
	}
	s.sinks = kept
	s.mu.Unlock()
}

// SetLevel sets the global severity threshold. The change applies to
// records dispatched afterwards; records already queued are unaffected
// until the worker fans them out.
func (s *Sinker) SetLevel(level core.Level) {
	s.level.Store(int32(level))
}

// Level returns the current global severity threshold.
func (s *Sinker) Level() core.Level {
	return core.Level(s.level.Load())
}

// Dispatch forwards a record to all registered sinks. In async mode the
// record is enqueued and the call returns immediately, without filtering;
// the worker filters at fan-out time. In sync mode filtering and fan-out
// happen on the calling goroutine.
func (s *Sinker) Dispatch(rec core.Record) {
	if q := s.queue.Load(); q != nil && s.running.Load() {
		q.Push(rec)
		return
	}
	s.fanOut(rec)
}

// fanOut delivers one record to every registered sink, in registration
// order, after the central severity check. A panicking sink is contained
// and reported to the fallback writer; it does not disturb the remaining
// sinks.
func (s *Sinker) fanOut(rec core.Record) {
	if !core.Enabled(rec.Level, s.Level()) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sk := range s.sinks {
		if sk == nil {
			continue
		}
		var c panics.Catcher
		c.Try(func() { sk.Consume(rec) })
		if r := c.Recovered(); r != nil {
			fmt.Fprintf(s.fallback, "sinker: sink panicked: %v\n", r.Value)
		}
	}
}

// Init enables asynchronous dispatch: it allocates the bounded queue and
// spawns the worker task. It is a no-op without a backend or when already
// running. If task creation fails the hub rolls back to a valid synchronous
// state; callers observe the outcome via IsRunning.
func (s *Sinker) Init(cfg backend.TaskConfig) {
	if s.be == nil {
		return
	}
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	if cfg.Name == "" {
		cfg = backend.DefaultTaskConfig()
	}
	s.stopping.Store(false)

	q := ring.New(s.capacity, s.be)
	s.queue.Store(q)

	done := make(chan struct{})
	s.workerDone = done
	task, err := s.be.StartTask(cfg, func() {
		defer close(done)
		s.workerLoop(q)
	})
	if err != nil {
		s.queue.Store(nil)
		q.Close()
		s.workerDone = nil
		s.running.Store(false)
		fmt.Fprintf(s.fallback, "sinker: worker task creation failed: %v\n", err)
		return
	}
	s.task = task
}

// Shutdown drains the queue and returns the hub to synchronous mode. It is
// a no-op when async dispatch is not running and is safe to call twice.
//
// The drain is best-effort: a bounded flush, then a bounded wait for the
// worker to observe shutdown and exit. The worker's own exit path performs
// a final non-blocking drain, so records already enqueued are not discarded.
func (s *Sinker) Shutdown() {
	if !s.running.Load() {
		return
	}
	s.stopping.Store(true)

	q := s.queue.Load()
	if q != nil {
		// Wake the worker in case it is blocked in a pop.
		q.Signal()
	}
	s.Flush(s.flushTimeout)

	s.running.Store(false)
	if q != nil {
		// Second wake covers the worker re-checking state between the
		// flag flip and its next wait.
		q.Signal()
	}

	if done := s.workerDone; done != nil {
		select {
		case <-done:
		case <-time.After(shutdownGrace):
		}
	} else {
		s.sleep(shutdownGrace)
	}

	if s.task != nil {
		s.task.Delete()
		s.task = nil
	}
	s.workerDone = nil
	s.queue.Store(nil)
	if q != nil {
		q.Close()
	}
}

// Flush waits until the queue is empty or the timeout elapses, polling at a
// fixed interval. It returns whether the queue ended empty. Producers are
// not paused: if they keep publishing, a flush can time out even while the
// worker makes progress.
func (s *Sinker) Flush(timeout time.Duration) bool {
	q := s.queue.Load()
	if q == nil {
		return true
	}
	deadline := time.Now().Add(timeout)
	for !q.Empty() {
		if !time.Now().Before(deadline) {
			return q.Empty()
		}
		s.sleep(pollInterval)
	}
	return true
}

// IsRunning reports whether asynchronous dispatch is active.
func (s *Sinker) IsRunning() bool {
	return s.running.Load()
}

// Metrics returns a snapshot for monitoring.
func (s *Sinker) Metrics() Metrics {
	m := Metrics{
		Capacity: s.capacity,
		Running:  s.running.Load(),
	}
	if q := s.queue.Load(); q != nil {
		m.DroppedCount = q.Dropped()
		m.QueuedCount = q.Len()
		m.Capacity = q.Capacity()
	}
	return m
}

func (s *Sinker) sleep(d time.Duration) {
	if s.be != nil {
		s.be.Sleep(d)
		return
	}
	time.Sleep(d)
}
