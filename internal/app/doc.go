// Package app provides the orchestration layer for dockbar.
//
// # Overview
//
// This package is the composition root: it loads configuration, sets up
// logging, builds the dock engine and everything it talks to, and hands the
// result to the TUI.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()     Read ~/.config/dockbar/config.toml
//	       ├─────> logging.Setup()   slog to the log file
//	       ├─────> prefs.Load()      Theme and label preference
//	       ├─────> wire()            Scheduler, catalog, driver, engine
//	       ├─────> ui.Run()          Start TUI (blocks)
//	       └─────> catalog.Wait()    Reap launched commands
//
// # Shared Scheduler
//
// dock.Engine and motion.Driver both schedule timers through one
// ui.Scheduler. Its callbacks run inside the Bubble Tea update loop, so the
// engine, which is not safe for concurrent use, is only touched from one
// goroutine.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file unreadable or invalid
//   - Log file cannot be created
//   - The TUI fails to start
//
// Recoverable errors (logged):
//   - Preferences that cannot be read or saved
//   - Launch failures, which also show in the header
//
// With Options.Dev set, dock invariant violations such as dragging an
// unknown item are logged at error level instead of warn.
package app
