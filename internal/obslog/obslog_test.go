package obslog

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		raw  string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, c := range cases {
		if got := parseLevel(c.raw); got != c.want {
			t.Errorf("parseLevel(%q) = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestInitVerbosityInstallsDebugHandler(t *testing.T) {
	InitVerbosity(true)
	if !slog.Default().Enabled(nil, slog.LevelDebug) {
		t.Fatal("expected debug-level logging to be enabled after InitVerbosity(true)")
	}
}
