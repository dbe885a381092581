package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   slog.Level
		wantOK bool
	}{
		{"debug", slog.LevelDebug, true},
		{" INFO ", slog.LevelInfo, true},
		{"Warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Fatalf("ParseLevel(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSetup_WritesToFile(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	path := filepath.Join(t.TempDir(), "state", "dockbar.log")
	logger, closer, err := Setup(Options{Path: path, Level: "warn"})
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "item", "browser")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	text := string(data)
	if strings.Contains(text, "hidden") {
		t.Fatalf("info record written at warn level:\n%s", text)
	}
	if !strings.Contains(text, "level=WARN") || !strings.Contains(text, "item=browser") {
		t.Fatalf("log file missing warn record:\n%s", text)
	}
}

func TestSetup_DebugOverridesLevel(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	path := filepath.Join(t.TempDir(), "dockbar.log")
	logger, closer, err := Setup(Options{Path: path, Level: "error", Debug: true})
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	defer closer.Close()
	if !logger.Enabled(t.Context(), slog.LevelDebug) {
		t.Fatalf("debug level not enabled with Debug set")
	}
}

func TestSetup_EmptyPathDiscards(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	logger, closer, err := Setup(Options{})
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	logger.Error("nowhere")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
