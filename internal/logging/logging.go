// Package logging routes dockbar's structured logs to a file. The terminal
// belongs to the TUI, so nothing is ever written to stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var levelMap = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ParseLevel maps a config level name to a slog level. Unknown names
// report false.
func ParseLevel(name string) (slog.Level, bool) {
	level, ok := levelMap[strings.ToLower(strings.TrimSpace(name))]
	return level, ok
}

// Options configure Setup.
type Options struct {
	Path  string
	Level string
	// Debug forces debug level regardless of Level.
	Debug bool
}

// Setup opens the log file for appending, installs a text handler as the
// slog default and returns the logger together with the file to close on
// exit. An empty Path discards every record.
func Setup(opts Options) (*slog.Logger, io.Closer, error) {
	level, ok := ParseLevel(opts.Level)
	if !ok {
		level = slog.LevelInfo
	}
	if opts.Debug {
		level = slog.LevelDebug
	}

	var (
		out    io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		file, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = file, file
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	logger.Debug("logging initialized", "level", level.String(), "log_file", opts.Path)
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
