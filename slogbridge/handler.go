// Package slogbridge lets log/slog users feed the dispatch hub: it
// implements slog.Handler by converting each slog.Record into a hub record.
// Attributes are flattened into the message text, since records carry only
// a tag and a message.
package slogbridge

import (
	"context"
	"log/slog"
	"strings"

	"github.com/embedlog/sinker/core"
	"github.com/embedlog/sinker/dispatch"
)

// Handler is a slog.Handler adapter dispatching through a hub.
type Handler struct {
	hub   *dispatch.Sinker
	tag   string
	attrs []slog.Attr
	group string
}

// New creates a slog.Handler that emits records tagged with tag.
func New(hub *dispatch.Sinker, tag string) *Handler {
	return &Handler{hub: hub, tag: tag}
}

// Enabled reports whether the hub's threshold admits the given slog level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return core.Enabled(levelFromSlog(level), h.hub.Level())
}

// Handle converts the slog record and dispatches it.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)
	for _, a := range h.attrs {
		appendAttr(&b, h.group, a)
	}
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.group, a)
		return true
	})

	rec := core.Record{
		Time:    record.Time,
		Level:   levelFromSlog(record.Level),
		Tag:     h.tag,
		Message: b.String(),
	}
	if rec.Time.IsZero() {
		rec = core.NewRecord(rec.Level, rec.Tag, rec.Message)
	}
	h.hub.Dispatch(rec)
	return nil
}

// WithAttrs returns a handler that appends the given attributes to every
// message.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(merged, h.attrs)
	merged = append(merged, attrs...)
	return &Handler{hub: h.hub, tag: h.tag, attrs: merged, group: h.group}
}

// WithGroup returns a handler that prefixes attribute keys with the group
// name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	attrs := make([]slog.Attr, len(h.attrs))
	copy(attrs, h.attrs)
	return &Handler{hub: h.hub, tag: h.tag, attrs: attrs, group: group}
}

func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		sub := a.Key
		if group != "" {
			sub = group + "." + a.Key
		}
		for _, nested := range a.Value.Group() {
			appendAttr(b, sub, nested)
		}
		return
	}
	b.WriteByte(' ')
	if group != "" {
		b.WriteString(group)
		b.WriteByte('.')
	}
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}

// levelFromSlog maps slog levels onto the severity scale.
func levelFromSlog(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.LevelError
	case level >= slog.LevelWarn:
		return core.LevelWarning
	case level >= slog.LevelInfo:
		return core.LevelInfo
	default:
		return core.LevelDebug
	}
}
