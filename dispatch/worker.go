package dispatch

import (
	"fmt"

	"github.com/embedlog/sinker/ring"
)

// workerLoop is the body of the background dispatch task. It pops with a
// short timeout so a shutdown request never waits long on an empty queue,
// fans out whatever it receives, and surfaces drop notices at its own
// polling cadence. The loop leaves its running phase only when a shutdown
// has been requested AND the queue is empty; pending records are always
// flushed first. A final non-blocking drain pass guarantees shutdown never
// discards an already-enqueued record.
func (s *Sinker) workerLoop(q *ring.Buffer) {
	var lastDropped uint64
	for {
		if s.stopping.Load() && q.Empty() {
			break
		}
		if rec, ok := q.Pop(popTimeout); ok {
			s.fanOut(rec)
		}
		if d := q.Dropped(); d != lastDropped {
			fmt.Fprintf(s.fallback, "sinker: %d records dropped (queue full)\n", d-lastDropped)
			lastDropped = d
		}
	}

	// Drain pass: deliver everything that slipped in before the flag flip.
	for {
		rec, ok := q.Pop(0)
		if !ok {
			break
		}
		s.fanOut(rec)
	}
}
