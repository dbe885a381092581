// Package ui provides the Bubble Tea front end for dockbar.
//
// # Architecture Overview
//
// The screen is a desktop with the dock bar along the bottom edge. Items that
// are configured but not on the dock sit on a shelf near the top and can be
// dragged in. The UI owns no ordering rules: it turns mouse and keyboard
// input into dock.Engine calls and draws whatever the engine and the
// motion.Driver report.
//
//	row 0        header: logo, latest dock activity, running count
//	row 1..3     shelf of undocked items
//	...          desktop
//	H-5          jump headroom (launch bounce, dragged glyph)
//	H-4          icons
//	H-3          labels
//	H-2          running dots
//	H-1          footer buttons
//
// # Package Structure
//
//   - app.go: Model, Options, Init/Update/View and Run
//   - layout.go: screen rows, the centered dockLayout, constants
//   - canvas.go: styled cell grid that animated glyphs are composed on
//   - dock_view.go: header, footer, shelf and bar rendering
//   - mouse.go: press/motion/release gesture handling
//   - keyboard.go: focus movement and keyboard drags
//   - scheduler.go: dock.Scheduler that fires inside Update
//   - logs.go: log overlay
//   - help.go, keys.go, theme.go: help overlay, bindings, themes
//
// # Event Loop
//
// dock.Engine is single-threaded. Timers created through Scheduler send a
// timerMsg to the program when due and the callback runs inside Update, so
// the debounce queue and slot transitions never race with input handling.
// While motion.Driver reports Active, Update keeps requesting frames at
// FrameInterval; otherwise the program is idle.
//
// # Mouse
//
// A press on a slot or shelf item starts a gesture. Moving DragThreshold
// cells turns it into a drag; releasing earlier launches the item. While
// dragging, hovering a slot sends DragOver with the cell's midpoint as the
// cursor, and leaving the bar rows lifts the item off the dock. Terminals do
// not repeat motion events, so the last pointer cell is replayed as a
// dragover whenever a timer fires; a slot that was sliding when the pointer
// reached it still gets the dragover once it settles. A release over the
// bar holds the drop until the item has landed. Footer buttons are
// bubblezone zones.
//
// # Keyboard
//
// The keyboard drives the same engine calls: space picks up the focused
// item, arrows hover the neighbor's matching half, x lifts it off the bar,
// enter drops and esc cancels. Like a mouse release, enter waits for a
// queued lift and for sliding slots before it drops.
package ui
