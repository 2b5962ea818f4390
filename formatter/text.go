package formatter

import (
	"bytes"
	"io"
	"time"

	"github.com/embedlog/sinker/core"
)

// TextFormatter formats records as human-readable text:
//
//	2024-05-01T10:30:00Z [WARNING] wifi: scan failed
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format formats a record as text
func (f *TextFormatter) Format(rec core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(rec, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *TextFormatter) FormatTo(rec core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(rec, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.LevelNone:    " [NONE] ",
	core.LevelError:   " [ERROR] ",
	core.LevelWarning: " [WARNING] ",
	core.LevelInfo:    " [INFO] ",
	core.LevelDebug:   " [DEBUG] ",
	core.LevelVerbose: " [VERBOSE] ",
}

// formatToBuffer writes the formatted record into the given buffer
func (f *TextFormatter) formatToBuffer(rec core.Record, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	// Level - use pre-formatted string
	if int(rec.Level) >= 0 && int(rec.Level) < len(levelBrackets) {
		buf.WriteString(levelBrackets[rec.Level])
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	if rec.Tag != "" {
		buf.WriteString(rec.Tag)
		buf.WriteString(": ")
	}

	buf.WriteString(rec.Message)
	buf.WriteByte('\n')
}
