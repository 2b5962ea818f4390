package sink

import (
	"io"
	"os"
	"sync"

	"github.com/embedlog/sinker/core"
	"github.com/embedlog/sinker/formatter"
)

// WriterSink renders records through a Formatter and writes them to an
// io.Writer. Writes are serialized by an internal mutex, so a single
// WriterSink may be registered with hubs dispatching from several threads.
type WriterSink struct {
	mu        sync.Mutex
	writer    io.Writer
	formatter formatter.Formatter
}

// WriterConfig holds configuration for a writer sink
type WriterConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// NewWriter creates a sink that formats records onto w.
func NewWriter(cfg WriterConfig) *WriterSink {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	return &WriterSink{writer: cfg.Writer, formatter: cfg.Formatter}
}

// Consume formats and writes the record. Write errors are swallowed: the
// sink contract is non-failing, and a broken writer must not disturb the
// dispatch path.
func (s *WriterSink) Consume(rec core.Record) {
	s.mu.Lock()
	_ = s.formatter.FormatTo(rec, s.writer)
	s.mu.Unlock()
}
