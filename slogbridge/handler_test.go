package slogbridge

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embedlog/sinker/core"
	"github.com/embedlog/sinker/dispatch"
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

func newHub() (*dispatch.Sinker, *captureSink) {
	hub := dispatch.New(dispatch.Options{Fallback: io.Discard})
	hub.SetLevel(core.LevelVerbose)
	cap := &captureSink{}
	hub.AddSink(cap)
	return hub, cap
}

func TestHandlerDispatches(t *testing.T) {
	hub, cap := newHub()
	log := slog.New(New(hub, "app"))

	log.Warn("disk pressure", "free_mb", 12)

	recs := cap.records()
	require.Len(t, recs, 1)
	assert.Equal(t, core.LevelWarning, recs[0].Level)
	assert.Equal(t, "app", recs[0].Tag)
	assert.Equal(t, "disk pressure free_mb=12", recs[0].Message)
	assert.False(t, recs[0].Time.IsZero())
}

func TestHandlerEnabledFollowsHubLevel(t *testing.T) {
	hub, _ := newHub()
	hub.SetLevel(core.LevelWarning)
	h := New(hub, "app")

	ctx := context.Background()
	assert.True(t, h.Enabled(ctx, slog.LevelError))
	assert.True(t, h.Enabled(ctx, slog.LevelWarn))
	assert.False(t, h.Enabled(ctx, slog.LevelInfo))
	assert.False(t, h.Enabled(ctx, slog.LevelDebug))
}

func TestLevelMapping(t *testing.T) {
	assert.Equal(t, core.LevelError, levelFromSlog(slog.LevelError))
	assert.Equal(t, core.LevelError, levelFromSlog(slog.LevelError+4))
	assert.Equal(t, core.LevelWarning, levelFromSlog(slog.LevelWarn))
	assert.Equal(t, core.LevelInfo, levelFromSlog(slog.LevelInfo))
	assert.Equal(t, core.LevelDebug, levelFromSlog(slog.LevelDebug))
	assert.Equal(t, core.LevelDebug, levelFromSlog(slog.LevelDebug-4))
}

func TestWithAttrs(t *testing.T) {
	hub, cap := newHub()
	log := slog.New(New(hub, "svc")).With("node", "a1")

	log.Info("joined")

	recs := cap.records()
	require.Len(t, recs, 1)
	assert.Equal(t, "joined node=a1", recs[0].Message)
}

func TestWithGroup(t *testing.T) {
	hub, cap := newHub()
	log := slog.New(New(hub, "svc")).WithGroup("net")

	log.Info("up", "iface", "eth0")

	recs := cap.records()
	require.Len(t, recs, 1)
	assert.Equal(t, "up net.iface=eth0", recs[0].Message)
}

func TestGroupAttrFlattened(t *testing.T) {
	hub, cap := newHub()
	log := slog.New(New(hub, "svc"))

	log.Info("req", slog.Group("http", slog.Int("status", 200)))

	recs := cap.records()
	require.Len(t, recs, 1)
	assert.Equal(t, "req http.status=200", recs[0].Message)
}
