package logger

import (
	"log/slog"
	"testing"
	"time"
)

func TestSelectLevel(t *testing.T) {
	cases := []struct {
		raw  string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"  WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, c := range cases {
		if got := selectLevel(c.raw); got != c.want {
			t.Errorf("selectLevel(%q) = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestSelectFormat(t *testing.T) {
	if got := selectFormat(Options{Format: "kv"}); got != "text" {
		t.Errorf("kv format = %s, want text", got)
	}
	if got := selectFormat(Options{Profile: "debug"}); got != "text" {
		t.Errorf("debug profile = %s, want text", got)
	}
	if got := selectFormat(Options{}); got != "json" {
		t.Errorf("default format = %s, want json", got)
	}
}

func TestRoundMS(t *testing.T) {
	if got := RoundMS(-time.Second); got != 0 {
		t.Errorf("negative duration = %v, want 0", got)
	}
	if got := RoundMS(1500 * time.Microsecond); got != 2*time.Millisecond {
		t.Errorf("rounded = %v, want 2ms", got)
	}
}

func TestBuildRID(t *testing.T) {
	if got := BuildRID(42, 7, 9); got != "42:7:9" {
		t.Errorf("BuildRID = %s", got)
	}
}
