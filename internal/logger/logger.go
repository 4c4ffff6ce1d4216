package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

var isTerminal = term.IsTerminal

// ParseLevel converts a --log-level value into a slog level.
func ParseLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", value)
	}
}

// Init installs the default slog logger writing to stderr.
func Init(level slog.Level) {
	color := isTerminal(int(os.Stderr.Fd()))
	slog.SetDefault(slog.New(NewConsoleHandler(os.Stderr, level, color)))
}

// ConsoleHandler prints one line per record: time, level, message, attrs.
type ConsoleHandler struct {
	mu    *sync.Mutex
	w     io.Writer
	level slog.Leveler
	attrs []slog.Attr
	group string
	color bool
}

// NewConsoleHandler returns a handler writing human readable lines to w.
func NewConsoleHandler(w io.Writer, level slog.Leveler, color bool) *ConsoleHandler {
	return &ConsoleHandler{mu: &sync.Mutex{}, w: w, level: level, color: color}
}

func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var line strings.Builder
	line.WriteString(r.Time.Format("15:04:05"))
	line.WriteByte(' ')

	levelColor, reset := "", ""
	if h.color {
		switch {
		case r.Level >= slog.LevelError:
			levelColor = "\033[31m"
		case r.Level >= slog.LevelWarn:
			levelColor = "\033[33m"
		case r.Level >= slog.LevelInfo:
			levelColor = "\033[32m"
		default:
			levelColor = "\033[90m"
		}
		reset = "\033[0m"
	}
	fmt.Fprintf(&line, "%s%-5s%s %s", levelColor, r.Level.String(), reset, r.Message)

	for _, attr := range h.attrs {
		writeAttr(&line, "", attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		writeAttr(&line, h.group, attr)
		return true
	})
	line.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, line.String())
	return err
}

func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append([]slog.Attr(nil), h.attrs...)
	for _, attr := range attrs {
		if h.group != "" {
			attr.Key = h.group + "." + attr.Key
		}
		clone.attrs = append(clone.attrs, attr)
	}
	return &clone
}

func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	clone := *h
	if clone.group != "" {
		clone.group += "." + name
	} else {
		clone.group = name
	}
	return &clone
}

func writeAttr(line *strings.Builder, group string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	value := attr.Value.Resolve().String()
	if strings.ContainsAny(value, " \t") {
		value = fmt.Sprintf("%q", value)
	}
	fmt.Fprintf(line, " %s=%s", key, value)
}
