package backend

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sourcegraph/conc/panics"
)

// goBackend implements Backend on plain goroutines and channels.
type goBackend struct {
	start time.Time
}

// Go returns a Backend backed by goroutines. Semaphores are capacity-one
// channels, tasks are goroutines, and the millisecond clock counts from
// backend creation.
func Go() Backend {
	return &goBackend{start: time.Now()}
}

func (g *goBackend) NewBinarySemaphore() Semaphore {
	return &chanSemaphore{ch: make(chan struct{}, 1)}
}

func (g *goBackend) StartTask(cfg TaskConfig, fn func()) (Task, error) {
	if fn == nil {
		return nil, errors.New("backend: nil task function")
	}
	t := &goTask{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		var c panics.Catcher
		c.Try(fn)
		if r := c.Recovered(); r != nil {
			// A dying task must not take the host process with it.
			fmt.Fprintf(os.Stderr, "backend: task %q panicked: %v\n", cfg.Name, r.Value)
		}
	}()
	return t, nil
}

func (g *goBackend) Sleep(d time.Duration) {
	time.Sleep(d)
}

func (g *goBackend) NowMillis() int64 {
	return time.Since(g.start).Milliseconds()
}

// chanSemaphore is a binary semaphore over a capacity-one channel.
type chanSemaphore struct {
	ch chan struct{}
}

func (s *chanSemaphore) Give() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

func (s *chanSemaphore) Take(timeout time.Duration) bool {
	if timeout < 0 {
		<-s.ch
		return true
	}
	if timeout == 0 {
		select {
		case <-s.ch:
			return true
		default:
			return false
		}
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-s.ch:
		return true
	case <-t.C:
		return false
	}
}

func (s *chanSemaphore) Close() {}

// goTask exits on its own once the task function returns.
type goTask struct {
	done chan struct{}
}

func (t *goTask) Delete() {}

func (t *goTask) Done() <-chan struct{} { return t.done }
