// Package logger configures the process-wide slog logger.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// Config selects level, format ("console", "text" or "json") and destination
type Config struct {
	Level  string
	Format string
	Output io.Writer
}

var (
	mu    sync.Mutex
	lg    *slog.Logger
	level = new(slog.LevelVar)
)

// Init installs the global logger and makes it the slog default.
// Calling it again replaces the handler, e.g. after a config reload.
func Init(cfg Config) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	level.Set(parseLevel(cfg.Level))
	lg = New(cfg, level)
	slog.SetDefault(lg)
	return lg
}

// New builds a logger without touching the global one
func New(cfg Config, leveler slog.Leveler) *slog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	if leveler == nil {
		leveler = parseLevel(cfg.Level)
	}
	opts := &slog.HandlerOptions{Level: leveler}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(cfg.Output, opts)
	case "text":
		handler = slog.NewTextHandler(cfg.Output, opts)
	default:
		handler = &consoleHandler{w: cfg.Output, level: leveler, mu: &sync.Mutex{}}
	}
	return slog.New(handler)
}

// SetLevel changes the global level without rebuilding the handler
func SetLevel(s string) {
	level.Set(parseLevel(s))
}

// L returns the global logger, initializing a console logger on first use
func L() *slog.Logger {
	mu.Lock()
	l := lg
	mu.Unlock()
	if l == nil {
		return Init(Config{Level: "info", Format: "console"})
	}
	return l
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// consoleHandler writes one short line per record:
//
//	12:00:00 INFO  dash started  dir=1 t=2.350
type consoleHandler struct {
	w     io.Writer
	mu    *sync.Mutex
	level slog.Leveler
	attrs []slog.Attr
	group string
}

func (h *consoleHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Time.Format(time.TimeOnly))
	b.WriteByte(' ')
	b.WriteString(levelTag(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		b.WriteString(formatAttr(h.group, a))
	}
	r.Attrs(func(a slog.Attr) bool {
		b.WriteString(formatAttr(h.group, a))
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &c
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	c := *h
	c.attrs = append([]slog.Attr{}, h.attrs...)
	if h.group != "" {
		c.group = h.group + "." + name
	} else {
		c.group = name
	}
	return &c
}

func levelTag(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARN "
	case l >= slog.LevelInfo:
		return "INFO "
	default:
		return "DEBUG"
	}
}

func formatAttr(group string, a slog.Attr) string {
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	return fmt.Sprintf("  %s=%v", key, a.Value)
}
