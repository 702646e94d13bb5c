package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedClock(l *Logger) {
	l.now = func() time.Time { return time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC) }
}

func TestLogStampsAndAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "showroom.log")
	l := New(path)
	fixedClock(l)
	l.Log("first")
	l.Log("second")

	want := []string{"[2026-03-01 12:30:00] first", "[2026-03-01 12:30:00] second"}
	got := l.Lines()
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Lines = %q, want %q", got, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if string(data) != want[0]+"\n"+want[1]+"\n" {
		t.Errorf("file = %q", data)
	}
}

func TestLinesIsACopy(t *testing.T) {
	l := New("")
	l.Log("a")
	lines := l.Lines()
	lines[0] = "changed"
	if l.Lines()[0] == "changed" {
		t.Error("Lines exposed internal storage")
	}
}

func TestHandlerFormatsAndFilters(t *testing.T) {
	l := New("")
	fixedClock(l)
	log := l.Slog(slog.LevelInfo)

	log.Debug("hidden")
	log.Info("session mounted", "platform", "desktop", "colliders", 3)
	log.With("component", "spawn").WithGroup("body").Warn("released", "y", 1.5)

	got := l.Lines()
	want := []string{
		"[2026-03-01 12:30:00] INFO  session mounted  platform=desktop  colliders=3",
		"[2026-03-01 12:30:00] WARN  released  component=spawn  body.y=1.5",
	}
	if len(got) != len(want) {
		t.Fatalf("Lines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if got != tt.want || (err != nil) != tt.wantErr {
				t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
			}
			if err != nil && !strings.HasPrefix(err.Error(), "logger: ") {
				t.Errorf("error %q lacks package prefix", err)
			}
		})
	}
}
