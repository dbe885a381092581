package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Attr is one key=value pair of a log line.
type Attr struct {
	Key   string
	Value string
}

// Record is a parsed slog text line.
type Record struct {
	Time  string
	Level string
	Msg   string
	Attrs []Attr
}

// Parse splits a line written by slog's text handler. It reports false for
// lines that are not key=value records, such as panics or stray output.
func Parse(line string) (Record, bool) {
	var rec Record
	rest := strings.TrimSpace(line)
	if rest == "" {
		return rec, false
	}
	for rest != "" {
		eq := strings.IndexByte(rest, '=')
		if eq <= 0 || strings.ContainsAny(rest[:eq], " \t\"") {
			return Record{}, false
		}
		key := rest[:eq]
		rest = rest[eq+1:]

		var value string
		if strings.HasPrefix(rest, `"`) {
			end := closingQuote(rest)
			if end < 0 {
				return Record{}, false
			}
			unquoted, err := strconv.Unquote(rest[:end+1])
			if err != nil {
				return Record{}, false
			}
			value = unquoted
			rest = rest[end+1:]
		} else {
			sp := strings.IndexByte(rest, ' ')
			if sp < 0 {
				sp = len(rest)
			}
			value = rest[:sp]
			rest = rest[sp:]
		}
		rest = strings.TrimLeft(rest, " ")

		switch key {
		case "time":
			rec.Time = value
		case "level":
			rec.Level = value
		case "msg":
			rec.Msg = value
		default:
			rec.Attrs = append(rec.Attrs, Attr{Key: key, Value: value})
		}
	}
	return rec, rec.Level != "" || rec.Msg != ""
}

func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}

// Styles colors the parts of a log line.
type Styles struct {
	Time  lipgloss.Style
	Key   lipgloss.Style
	Value lipgloss.Style
	Msg   lipgloss.Style
	Debug lipgloss.Style
	Info  lipgloss.Style
	Warn  lipgloss.Style
	Error lipgloss.Style
}

// ColorizeLine renders one log line. Lines that do not parse are returned
// unchanged.
func ColorizeLine(line string, s Styles) string {
	rec, ok := Parse(line)
	if !ok {
		return line
	}
	var b strings.Builder
	if rec.Time != "" {
		b.WriteString(s.Time.Render(shortTime(rec.Time)))
		b.WriteByte(' ')
	}
	if rec.Level != "" {
		b.WriteString(s.level(rec.Level).Render(fmt.Sprintf("%-5s", rec.Level)))
		b.WriteByte(' ')
	}
	b.WriteString(s.Msg.Render(rec.Msg))
	for _, a := range rec.Attrs {
		b.WriteByte(' ')
		b.WriteString(s.Key.Render(a.Key + "="))
		b.WriteString(s.Value.Render(a.Value))
	}
	return b.String()
}

// ColorizeLines renders every line.
func ColorizeLines(lines []string, s Styles) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = ColorizeLine(line, s)
	}
	return out
}

func (s Styles) level(level string) lipgloss.Style {
	switch {
	case strings.HasPrefix(level, "DEBUG"):
		return s.Debug
	case strings.HasPrefix(level, "WARN"):
		return s.Warn
	case strings.HasPrefix(level, "ERROR"):
		return s.Error
	default:
		return s.Info
	}
}

// shortTime keeps the clock part of an RFC 3339 timestamp.
func shortTime(ts string) string {
	t := strings.IndexByte(ts, 'T')
	if t < 0 {
		return ts
	}
	clock := ts[t+1:]
	if dot := strings.IndexAny(clock, ".+-Z"); dot > 0 {
		clock = clock[:dot]
	}
	return clock
}
