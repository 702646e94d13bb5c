package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LogFilePath is the default log file, relative to the working directory.
const LogFilePath = "logs/showroom.log"

const timeLayout = "2006-01-02 15:04:05"

// Logger stores log lines in memory (the in-game terminal reads them) and appends them to a file.
// Structured records reach it through Handler.
type Logger struct {
	mu    sync.Mutex
	lines []string
	path  string
	now   func() time.Time
}

// New returns a Logger appending to path and ensures its directory exists. An empty path keeps
// lines in memory only.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{lines: make([]string, 0), path: path, now: time.Now}
}

// Log appends a line prefixed with [timestamp] and writes it to the log file.
func (l *Logger) Log(line string) {
	stamped := "[" + l.now().Format(timeLayout) + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	l.mu.Unlock()

	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Slog returns a structured logger writing through l at the given level.
func (l *Logger) Slog(level slog.Leveler) *slog.Logger {
	return slog.New(l.Handler(level))
}

// Handler returns a slog.Handler that formats records as single lines:
//
//	INFO  session mounted  platform=desktop colliders=147
func (l *Logger) Handler(level slog.Leveler) slog.Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &lineHandler{log: l, level: level}
}

// ParseLevel maps debug, info, warn and error to slog levels. Anything else is an error and
// yields info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("logger: unknown level %q", s)
}

type lineHandler struct {
	log   *Logger
	level slog.Leveler
	// attrs holds WithAttrs pairs already formatted under the group active when they were added.
	attrs string
	group string
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(levelTag(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		b.WriteString(formatAttr(h.group, a))
		return true
	})
	h.log.Log(b.String())
	return nil
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	pre := h.attrs
	for _, a := range attrs {
		pre += formatAttr(h.group, a)
	}
	return &lineHandler{log: h.log, level: h.level, attrs: pre, group: h.group}
}

func (h *lineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	prefix := name
	if h.group != "" {
		prefix = h.group + "." + name
	}
	return &lineHandler{log: h.log, level: h.level, attrs: h.attrs, group: prefix}
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
