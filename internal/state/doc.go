// Package state tracks which dock items have a live process.
//
// # Overview
//
// Launching an item starts its command on a background goroutine that waits
// for the process to exit. The UI, meanwhile, draws a running dot under every
// live item. Store is the coordination point between the two.
//
//	Launcher goroutine:          UI (Update/View):
//	┌──────────────────┐        ┌──────────────────┐
//	│ cmd.Start()      │        │                  │
//	│ store.Started()  │───────→│ store.Snapshot() │
//	│ cmd.Wait()       │ (mutex)│      ↓           │
//	│ store.Exited()   │        │  running dots    │
//	└──────────────────┘        └──────────────────┘
//
// # Concurrency Model
//
// Store uses a readers-writer lock. Started and Exited take the write lock;
// Snapshot takes the read lock and returns a copy, so the UI never shares the
// running map with a launcher goroutine.
//
// # Errors
//
// A command that exits with an error leaves the item stopped and records the
// error in LastError together with the item name in LastFailed. A later
// successful exit does not clear it; the UI shows the most recent failure.
//
// The zero Store is ready to use.
package state
