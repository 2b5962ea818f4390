package hook

import (
	"bytes"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/embedlog/sinker/core"
	"github.com/embedlog/sinker/dispatch"
)

// Adapter intercepts a platform logger's byte stream and re-emits each
// complete line as a structured record through a hub. Wire it up with, for
// example, log.SetOutput(adapter) or as the destination of any component
// that writes leveled, possibly ANSI-colorized lines.
//
// Fragmented writes are accumulated until a terminating newline; escape
// sequences are then stripped and the line parsed against the
// "L (TIMESTAMP) TAG: MESSAGE" convention. Lines that do not match are
// ingested whole as the payload at the configured default severity, never
// dropped.
//
// Every write is forwarded verbatim to the previous writer (if any) before
// re-emission, preserving the platform's default output as a side effect.
//
// Writes are serialized by an internal mutex. The adapter guards against
// re-entry: a write arriving while the adapter is dispatching (a sink
// logging back into the intercepted stream) is forwarded only, breaking
// the recursion.
type Adapter struct {
	hub          *dispatch.Sinker
	prev         io.Writer
	defaultLevel core.Level

	mu          sync.Mutex
	buf         bytes.Buffer
	dispatching atomic.Bool
}

// Options configures an Adapter.
type Options struct {
	// Forward is the previous handler for the intercepted stream; every
	// write is passed through to it first. May be nil.
	Forward io.Writer
	// DefaultLevel is the severity assigned to unparsable lines
	// (default LevelInfo).
	DefaultLevel core.Level
}

// New creates an adapter feeding hub.
func New(hub *dispatch.Sinker, opts Options) *Adapter {
	if opts.DefaultLevel == core.LevelNone {
		opts.DefaultLevel = core.LevelInfo
	}
	return &Adapter{
		hub:          hub,
		prev:         opts.Forward,
		defaultLevel: opts.DefaultLevel,
	}
}

// Write implements io.Writer. It never returns an error: a log hook that
// fails its caller would defeat its purpose.
func (a *Adapter) Write(p []byte) (int, error) {
	if a.dispatching.Load() {
		// Re-entrant write from inside a sink; forward only.
		if a.prev != nil {
			a.prev.Write(p)
		}
		return len(p), nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.prev != nil {
		a.prev.Write(p)
	}

	a.buf.Write(p)
	for {
		raw := a.buf.Bytes()
		idx := bytes.IndexByte(raw, '\n')
		if idx < 0 {
			break
		}
		line := string(raw[:idx])
		a.buf.Next(idx + 1)
		a.ingest(line)
	}
	return len(p), nil
}

// ingest strips escapes, parses and dispatches one complete line.
func (a *Adapter) ingest(line string) {
	line = stripANSI(line)
	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}
	if line == "" {
		return
	}

	parsed := parseLine(line, a.defaultLevel)
	rec := core.Record{
		Time:    time.Now(),
		Level:   parsed.level,
		Tag:     parsed.tag,
		Message: parsed.message,
	}
	if parsed.hasMillis {
		rec.Time = time.UnixMilli(parsed.millis)
	}

	a.dispatching.Store(true)
	a.hub.Dispatch(rec)
	a.dispatching.Store(false)
}
