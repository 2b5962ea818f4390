package backend

import "time"

// CoreAny lets the backend schedule the task on any core.
const CoreAny = -1

// WaitForever can be passed as a semaphore timeout to block indefinitely.
const WaitForever time.Duration = -1

// TaskConfig describes the worker task to create. The fields are opaque to
// the dispatch engine and only interpreted by the backend; the Go backend
// ignores stack size, priority and core affinity.
type TaskConfig struct {
	Name      string
	StackSize int
	Priority  int
	Core      int
}

// DefaultTaskConfig returns the task configuration used when none is given.
func DefaultTaskConfig() TaskConfig {
	return TaskConfig{
		Name:      "sink-dispatch",
		StackSize: 4096,
		Priority:  5,
		Core:      CoreAny,
	}
}

// Semaphore is a binary wait primitive. Give sets the signal (saturating at
// one outstanding signal), Take consumes it, blocking up to the timeout.
type Semaphore interface {
	// Give signals the semaphore. Signaling an already-signaled binary
	// semaphore is a no-op.
	Give()

	// Take waits for a signal. A zero timeout polls, WaitForever blocks
	// until signaled. Returns false if the timeout elapsed first.
	Take(timeout time.Duration) bool

	// Close releases the semaphore. Behavior of Give/Take after Close is
	// undefined.
	Close()
}

// Task is a handle to a running background task.
type Task interface {
	// Delete requests the task be torn down. Backends whose tasks exit
	// cooperatively (like the Go backend) treat this as a no-op.
	Delete()

	// Done returns a channel closed when the task function has returned,
	// or nil if the backend cannot observe task exit.
	Done() <-chan struct{}
}

// Backend supplies the host primitives needed for asynchronous dispatch:
// binary semaphores, background tasks and timing. A nil Backend is a valid
// configuration and forces the dispatch hub into synchronous mode.
type Backend interface {
	// NewBinarySemaphore creates a binary semaphore with no signal pending.
	NewBinarySemaphore() Semaphore

	// StartTask runs fn on a new task described by cfg.
	StartTask(cfg TaskConfig, fn func()) (Task, error)

	// Sleep blocks the calling task for the given duration.
	Sleep(d time.Duration)

	// NowMillis returns a monotonic millisecond clock reading.
	NowMillis() int64
}
