package formatter

import (
	"bytes"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embedlog/sinker/core"
)

var testTime = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

func TestTextFormat(t *testing.T) {
	f := NewTextFormatter(Config{})
	out, err := f.Format(core.Record{
		Time:    testTime,
		Level:   core.LevelWarning,
		Tag:     "wifi",
		Message: "scan failed",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T10:30:00Z [WARNING] wifi: scan failed\n", string(out))
}

func TestTextFormatNoTag(t *testing.T) {
	f := NewTextFormatter(Config{})
	out, err := f.Format(core.Record{
		Time:    testTime,
		Level:   core.LevelInfo,
		Message: "booted",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T10:30:00Z [INFO] booted\n", string(out))
}

func TestTextFormatCustomTimestamp(t *testing.T) {
	f := NewTextFormatter(Config{TimestampFormat: "15:04:05"})
	out, err := f.Format(core.Record{
		Time:    testTime,
		Level:   core.LevelDebug,
		Tag:     "t",
		Message: "m",
	})
	require.NoError(t, err)
	assert.Equal(t, "10:30:00 [DEBUG] t: m\n", string(out))
}

func TestTextFormatUnknownLevel(t *testing.T) {
	f := NewTextFormatter(Config{})
	out, err := f.Format(core.Record{Time: testTime, Level: core.Level(99), Message: "m"})
	require.NoError(t, err)
	assert.Contains(t, string(out), "[UNKNOWN]")
}

func TestTextFormatTo(t *testing.T) {
	f := NewTextFormatter(Config{})
	rec := core.Record{Time: testTime, Level: core.LevelError, Tag: "x", Message: "boom"}

	direct, err := f.Format(rec)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.FormatTo(rec, &buf))
	assert.Equal(t, string(direct), buf.String())
}

func TestJSONFormat(t *testing.T) {
	f := NewJSONFormatter(Config{})
	out, err := f.Format(core.Record{
		Time:    testTime,
		Level:   core.LevelError,
		Tag:     "sensor",
		Message: "read failed",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasSuffix(out, []byte{'\n'}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "ERROR", decoded["level"])
	assert.Equal(t, "sensor", decoded["tag"])
	assert.Equal(t, "read failed", decoded["message"])
	assert.Equal(t, "2024-05-01T10:30:00Z", decoded["time"])
}

func TestJSONFormatOmitsEmptyTag(t *testing.T) {
	f := NewJSONFormatter(Config{})
	out, err := f.Format(core.Record{Time: testTime, Level: core.LevelInfo, Message: "m"})
	require.NoError(t, err)
	assert.NotContains(t, string(out), `"tag"`)
}

func BenchmarkTextFormat(b *testing.B) {
	f := NewTextFormatter(Config{})
	rec := core.Record{Time: testTime, Level: core.LevelInfo, Tag: "bench", Message: "steady state message"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(rec)
	}
}

func BenchmarkJSONFormat(b *testing.B) {
	f := NewJSONFormatter(Config{})
	rec := core.Record{Time: testTime, Level: core.LevelInfo, Tag: "bench", Message: "steady state message"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(rec)
	}
}
