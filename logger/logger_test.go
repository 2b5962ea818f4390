package logger

import (
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embedlog/sinker/core"
	"github.com/embedlog/sinker/dispatch"
	"github.com/embedlog/sinker/sink"
)

type captureSink struct {
	mu   sync.Mutex
	recs []core.Record
}

func (c *captureSink) Consume(rec core.Record) {
	c.mu.Lock()
	c.recs = append(c.recs, rec)
	c.mu.Unlock()
}

func (c *captureSink) records() []core.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]core.Record, len(c.recs))
	copy(out, c.recs)
	return out
}

func newHub(t *testing.T) (*dispatch.Sinker, *captureSink) {
	t.Helper()
	hub := dispatch.New(dispatch.Options{Fallback: io.Discard})
	hub.SetLevel(core.LevelVerbose)
	cap := &captureSink{}
	hub.AddSink(cap)
	return hub, cap
}

func TestLogAttachesTag(t *testing.T) {
	hub, cap := newHub(t)
	log := New(hub, "wifi")

	log.Log(core.LevelInfo, "connected")

	recs := cap.records()
	require.Len(t, recs, 1)
	assert.Equal(t, "wifi", recs[0].Tag)
	assert.Equal(t, "connected", recs[0].Message)
	assert.Equal(t, core.LevelInfo, recs[0].Level)
	assert.False(t, recs[0].Time.IsZero())
}

func TestLogfFormats(t *testing.T) {
	hub, cap := newHub(t)
	log := New(hub, "sensor")

	log.Logf(core.LevelDebug, "value=%d unit=%s", 42, "mV")

	recs := cap.records()
	require.Len(t, recs, 1)
	assert.Equal(t, "value=42 unit=mV", recs[0].Message)
}

func TestLevelHelpers(t *testing.T) {
	hub, cap := newHub(t)
	log := New(hub, "t")

	log.Error("e")
	log.Warn("w")
	log.Info("i")
	log.Debug("d")
	log.Verbose("v")
	log.Errorf("e%d", 2)

	recs := cap.records()
	require.Len(t, recs, 6)
	assert.Equal(t, core.LevelError, recs[0].Level)
	assert.Equal(t, core.LevelWarning, recs[1].Level)
	assert.Equal(t, core.LevelInfo, recs[2].Level)
	assert.Equal(t, core.LevelDebug, recs[3].Level)
	assert.Equal(t, core.LevelVerbose, recs[4].Level)
	assert.Equal(t, "e2", recs[5].Message)
}

func TestFilteredMessageNeverDispatched(t *testing.T) {
	hub := dispatch.New(dispatch.Options{Fallback: io.Discard})
	hub.SetLevel(core.LevelWarning)

	dispatched := false
	hub.AddSink(sink.Func(func(core.Record) { dispatched = true }))

	log := New(hub, "quiet")
	log.Info("below threshold")
	log.Debugf("also below %d", 1)

	assert.False(t, dispatched)
}

func TestZeroLoggerIsSafe(t *testing.T) {
	var log Logger
	log.Info("nowhere") // no hub: must not panic
}

func TestLoggable(t *testing.T) {
	hub, cap := newHub(t)

	type scanner struct {
		Loggable
	}
	s := &scanner{Loggable: NewLoggable(hub, "scanner")}
	s.Logger().Warnf("retry %d", 3)

	recs := cap.records()
	require.Len(t, recs, 1)
	assert.Equal(t, "scanner", recs[0].Tag)
	assert.Equal(t, "retry 3", recs[0].Message)
}
