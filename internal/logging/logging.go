// Package logging provides the compact line handler used by the routegraph
// command: "2006/01/02 15:04:05 LEVEL message key=value ...".
package logging

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
)

// LogHandler formats records as single lines and serialises writes.
type LogHandler struct {
	h     slog.Handler
	mu    *sync.Mutex
	out   io.Writer
	attrs []slog.Attr
	group string
}

// NewLogHandler returns a LogHandler writing to o. Only Level from opts is used.
func NewLogHandler(o io.Writer, opts *slog.HandlerOptions) *LogHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	return &LogHandler{
		out: o,
		h:   slog.NewTextHandler(o, &slog.HandlerOptions{Level: opts.Level}),
		mu:  &sync.Mutex{},
	}
}

// Enabled reports whether level passes the configured minimum.
func (h *LogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

// WithAttrs returns a handler that prefixes attrs to every record.
func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.h = h.h.WithAttrs(attrs)
	next.attrs = append(append([]slog.Attr{}, h.attrs...), h.qualify(attrs)...)

	return &next
}

// WithGroup returns a handler that prefixes later keys with name.
func (h *LogHandler) WithGroup(name string) slog.Handler {
	next := *h
	next.h = h.h.WithGroup(name)
	if h.group != "" {
		name = h.group + "." + name
	}
	next.group = name

	return &next
}

func (h *LogHandler) qualify(attrs []slog.Attr) []slog.Attr {
	if h.group == "" {
		return attrs
	}
	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = slog.Attr{Key: h.group + "." + a.Key, Value: a.Value}
	}

	return out
}

// Handle writes one line for r.
func (h *LogHandler) Handle(_ context.Context, r slog.Record) error {
	formattedTime := r.Time.Format("2006/01/02 15:04:05")
	strs := []string{formattedTime, r.Level.String(), r.Message}

	for _, a := range h.attrs {
		strs = append(strs, formatAttr(a))
	}
	var recAttrs []slog.Attr
	r.Attrs(func(a slog.Attr) bool {
		recAttrs = append(recAttrs, a)
		return true
	})
	for _, a := range h.qualify(recAttrs) {
		strs = append(strs, formatAttr(a))
	}

	b := []byte(strings.Join(strs, " ") + "\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.out.Write(b)

	return err
}

func formatAttr(a slog.Attr) string {
	v := a.Value.Resolve().String()
	if strings.ContainsAny(v, " \t\"=") {
		v = fmt.Sprintf("%q", v)
	}

	return a.Key + "=" + v
}

// ParseLevel maps debug, info, warn and error (any case) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// New returns a logger at level writing compact lines to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(NewLogHandler(w, &slog.HandlerOptions{Level: level}))
}
