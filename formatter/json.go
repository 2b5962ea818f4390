package formatter

import (
	"io"
	"time"

	json "github.com/goccy/go-json"

	"github.com/embedlog/sinker/core"
)

// JSONFormatter formats records as one JSON object per line.
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &JSONFormatter{Config: cfg}
}

type jsonRecord struct {
	Time    string `json:"time"`
	Level   string `json:"level"`
	Tag     string `json:"tag,omitempty"`
	Message string `json:"message"`
}

// Format formats a record as JSON
func (f *JSONFormatter) Format(rec core.Record) ([]byte, error) {
	data, err := json.Marshal(jsonRecord{
		Time:    rec.Time.Format(f.TimestampFormat),
		Level:   rec.Level.String(),
		Tag:     rec.Tag,
		Message: rec.Message,
	})
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// FormatTo formats a record as JSON and writes it directly to the writer
func (f *JSONFormatter) FormatTo(rec core.Record, w io.Writer) error {
	data, err := f.Format(rec)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
