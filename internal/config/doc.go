// Package config loads the dockbar configuration file.
//
// # Overview
//
// The config decides which items sit on the dock, how many leading slots are
// pinned, how long the reorder debounce window and slot transitions last, how
// wide each slot is drawn, and where logs go. dockbar works without any file:
// a missing config yields Default().
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/dockbar/config.toml (default)
//  3. If the file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing, keep the defaults for those
//
// Paths ending in .yaml or .yml are parsed as YAML; everything else as TOML.
//
// # Default Values
//
//   - anchors: 1 (the leftmost "home" item cannot be dragged or displaced)
//   - debounce_ms: 250
//   - transition_ms: 250
//   - slot_width: 8 cells
//   - log_level: info
//   - log_file: ~/.local/state/dockbar/dockbar.log
//   - items: finder, browser, calendar, terminal, notes
//
// # TOML Format
//
//	anchors = 1
//	debounce_ms = 250
//	slot_width = 8
//
//	[[items]]
//	name = "browser"
//	icon = "◎"
//	command = "firefox"
//
// An item without a command is still launchable; it is simply marked running
// until dockbar exits.
//
// # Validation
//
// Load rejects negative durations, slot widths below 3, unknown log levels,
// more anchors than items, and items with empty or duplicate names. Validate
// joins every problem into one error so a user can fix the file in one pass.
// A zero debounce_ms is accepted and means "use the engine default".
package config
