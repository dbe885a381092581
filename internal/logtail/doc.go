// Package logtail provides utilities for reading and colorizing log files.
//
// # Overview
//
// The log overlay shows the tail of dockbar's own log file. This package
// reads the last N lines without loading the whole file and renders slog's
// text format with lipgloss styles.
//
// # Reading Log Files
//
// Read uses a ring buffer of size maxLines:
//
//	1. Allocate ring buffer of size maxLines
//	2. For each line in file:
//	   - Store line at current index
//	   - Increment index (wrapping at maxLines)
//	   - Track total lines seen
//	3. If total < maxLines:
//	   - Return first 'count' entries from buffer
//	4. If total >= maxLines:
//	   - Return buffer starting from current index (oldest line)
//
// A non-positive maxLines returns every line. A missing file returns nil, nil
// so the overlay can open before anything has been logged.
//
// # Colorization
//
// Expected log format (slog.TextHandler):
//
//	time=2025-10-10T14:32:15.000+02:00 level=DEBUG msg="intent applied" component=dock intent=shift-left(b)
//
// Parse splits such a line into time, level, message and attributes,
// unquoting Go-quoted values. ColorizeLine renders the clock part of the
// timestamp, a padded level colored by severity, the message, and the
// attributes as key=value pairs. Lines that do not parse (panics, stray
// output) are returned unchanged rather than failing.
package logtail
