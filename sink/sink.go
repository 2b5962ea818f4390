package sink

import "github.com/embedlog/sinker/core"

// Sink receives a copy of every record that passes the hub's severity
// filter. Consume must not block appreciably: fan-out is sequential, so a
// stalled sink stalls every sink registered after it.
//
// The hub does not own a sink's lifetime; registering and unregistering is
// the caller's responsibility.
type Sink interface {
	Consume(rec core.Record)
}

// funcSink adapts a plain function to the Sink interface.
type funcSink struct {
	fn func(core.Record)
}

// Func wraps fn as a Sink. The returned value is a pointer, so it can be
// passed to RemoveSink to unregister exactly the sink that was added.
func Func(fn func(core.Record)) Sink {
	return &funcSink{fn: fn}
}

func (s *funcSink) Consume(rec core.Record) {
	if s.fn != nil {
		s.fn(rec)
	}
}
