package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/five82/dockbar/internal/logging"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Item is one dock entry.
type Item struct {
	Name    string `toml:"name" yaml:"name"`
	Icon    string `toml:"icon" yaml:"icon"`
	Command string `toml:"command" yaml:"command"`
}

// Config is the resolved dockbar configuration.
type Config struct {
	// Path is the file the config was read from, or would have been.
	Path       string
	Anchors    int
	Debounce   time.Duration
	Transition time.Duration
	SlotWidth  int
	LogLevel   string
	LogFile    string
	Items      []Item
}

const (
	defaultConfigPath   = "~/.config/dockbar/config.toml"
	defaultLogFile      = "~/.local/state/dockbar/dockbar.log"
	defaultAnchors      = 1
	defaultDebounceMS   = 250
	defaultTransitionMS = 250
	defaultSlotWidth    = 8
	defaultLogLevel     = "info"
	minSlotWidth        = 3
)

// DefaultItems is the dock used when the config lists none.
func DefaultItems() []Item {
	return []Item{
		{Name: "finder", Icon: "◆"},
		{Name: "browser", Icon: "◎"},
		{Name: "calendar", Icon: "▦"},
		{Name: "terminal", Icon: "▶"},
		{Name: "notes", Icon: "✎"},
	}
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Anchors:    defaultAnchors,
		Debounce:   defaultDebounceMS * time.Millisecond,
		Transition: defaultTransitionMS * time.Millisecond,
		SlotWidth:  defaultSlotWidth,
		LogLevel:   defaultLogLevel,
		LogFile:    mustExpand(defaultLogFile),
		Items:      DefaultItems(),
	}
}

// fileConfig mirrors the on-disk layout. Pointers tell "unset" from zero.
type fileConfig struct {
	Anchors      *int   `toml:"anchors" yaml:"anchors"`
	DebounceMS   *int   `toml:"debounce_ms" yaml:"debounce_ms"`
	TransitionMS *int   `toml:"transition_ms" yaml:"transition_ms"`
	SlotWidth    *int   `toml:"slot_width" yaml:"slot_width"`
	LogLevel     string `toml:"log_level" yaml:"log_level"`
	LogFile      string `toml:"log_file" yaml:"log_file"`
	Items        []Item `toml:"items" yaml:"items"`
}

// Load locates and parses the dockbar config, falling back to defaults when
// missing. Files ending in .yaml or .yml are read as YAML, anything else as
// TOML.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	cfg.Path = resolved

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if isYAML(resolved) {
		err = yaml.Unmarshal(bytes, &raw)
	} else {
		err = toml.Unmarshal(bytes, &raw)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.Anchors != nil {
		cfg.Anchors = *raw.Anchors
	}
	if raw.DebounceMS != nil {
		cfg.Debounce = time.Duration(*raw.DebounceMS) * time.Millisecond
	}
	if raw.TransitionMS != nil {
		cfg.Transition = time.Duration(*raw.TransitionMS) * time.Millisecond
	}
	if raw.SlotWidth != nil {
		cfg.SlotWidth = *raw.SlotWidth
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if len(raw.Items) > 0 {
		cfg.Items = make([]Item, len(raw.Items))
		for i, item := range raw.Items {
			cfg.Items[i] = Item{
				Name:    strings.TrimSpace(item.Name),
				Icon:    strings.TrimSpace(item.Icon),
				Command: strings.TrimSpace(item.Command),
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", resolved, err)
	}
	return cfg, nil
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var problems []error
	if c.Anchors < 0 {
		problems = append(problems, fmt.Errorf("anchors must not be negative, got %d", c.Anchors))
	}
	if c.Anchors > len(c.Items) {
		problems = append(problems, fmt.Errorf("anchors (%d) exceeds the number of items (%d)", c.Anchors, len(c.Items)))
	}
	if c.Debounce < 0 {
		problems = append(problems, fmt.Errorf("debounce_ms must not be negative"))
	}
	if c.Transition < 0 {
		problems = append(problems, fmt.Errorf("transition_ms must not be negative"))
	}
	if c.SlotWidth < minSlotWidth {
		problems = append(problems, fmt.Errorf("slot_width must be at least %d, got %d", minSlotWidth, c.SlotWidth))
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		problems = append(problems, fmt.Errorf("unknown log_level %q", c.LogLevel))
	}
	seen := make(map[string]bool, len(c.Items))
	for i, item := range c.Items {
		switch {
		case item.Name == "":
			problems = append(problems, fmt.Errorf("items[%d]: name is required", i))
		case seen[item.Name]:
			problems = append(problems, fmt.Errorf("items[%d]: duplicate name %q", i, item.Name))
		}
		seen[item.Name] = true
	}
	return errors.Join(problems...)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
