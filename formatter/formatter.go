package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/embedlog/sinker/core"
)

// Formatter renders a record into bytes for a writer sink.
type Formatter interface {
	// Format renders a record into a fresh byte slice.
	Format(rec core.Record) ([]byte, error)

	// FormatTo renders a record and writes it directly to the writer,
	// avoiding the intermediate slice.
	FormatTo(rec core.Record, w io.Writer) error
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time format (empty for RFC3339)
	TimestampFormat string
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
