package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"github.com/five82/dockbar/internal/dock"
)

func TestDockLayout_CentersSlots(t *testing.T) {
	l := dockLayout{Width: 80, SlotWidth: 8, Top: 8}
	got := l.Measure(itemIDs("a", "b", "c"))
	want := []dock.Rect{
		{Left: 28, Top: 8, Width: 8},
		{Left: 36, Top: 8, Width: 8},
		{Left: 44, Top: 8, Width: 8},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Measure mismatch (-want +got):\n%s", diff)
	}
}

func TestDockLayout_OverflowStartsAtZero(t *testing.T) {
	l := dockLayout{Width: 10, SlotWidth: 8, Top: 1}
	got := l.Measure(itemIDs("a", "b"))
	if got[0].Left != 0 || got[1].Left != 8 {
		t.Fatalf("lefts = %v, %v; want 0, 8", got[0].Left, got[1].Left)
	}
}

func TestScreenRows(t *testing.T) {
	s := screen{width: 80, height: 12}
	rows := []int{s.jumpRow(), s.iconRow(), s.labelRow(), s.dotRow(), s.footerRow()}
	if diff := cmp.Diff([]int{7, 8, 9, 10, 11}, rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
	for y, want := range map[int]bool{6: false, 7: true, 10: true, 11: false} {
		if got := s.inBar(y); got != want {
			t.Errorf("inBar(%d) = %v, want %v", y, got, want)
		}
	}
	if (screen{width: 19, height: 12}).fits() {
		t.Error("19 columns should not fit")
	}
}

func TestPointerUsesCellMiddle(t *testing.T) {
	if p := pointer(4, 2); p.X != 4.5 || p.Y != 2 {
		t.Fatalf("pointer(4, 2) = %+v", p)
	}
	if cell(3.5) != 4 || cell(3.49) != 3 || cell(-0.4) != 0 {
		t.Fatal("cell rounds to nearest")
	}
}

func TestCanvas_TextAndRuns(t *testing.T) {
	c := newCanvas(6, 3, lipgloss.NewStyle())
	s := c.style(lipgloss.NewStyle())

	c.text(1, 0, "ab", s)
	c.text(0, 1, "界x", s)
	c.text(5, 2, "界", s) // would spill past the edge

	got := strings.Split(ansi.Strip(c.String()), "\n")
	want := []string{" ab   ", "界x   ", "      "}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("canvas mismatch (-want +got):\n%s", diff)
	}
}

func TestCanvas_Centered(t *testing.T) {
	c := newCanvas(6, 2, lipgloss.NewStyle())
	c.centered(0, 0, 6, "abc", 0)
	c.centered(0, 1, 3, "abcdef", 0)

	got := strings.Split(ansi.Strip(c.String()), "\n")
	want := []string{" abc  ", "ab…   "}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("canvas mismatch (-want +got):\n%s", diff)
	}
}

func TestCanvas_ClipsOutOfBounds(t *testing.T) {
	c := newCanvas(3, 1, lipgloss.NewStyle())
	c.fill(-2, 0, 10, 0)
	c.text(-1, 0, "xyz", 0)
	c.text(0, 5, "nope", 0)

	if got := ansi.Strip(c.String()); got != "yz " {
		t.Fatalf("canvas = %q, want %q", got, "yz ")
	}
}

func TestScheduler_FiresInsideUpdate(t *testing.T) {
	s := NewScheduler()
	msgs := make(chan any, 1)
	s.Attach(func(msg tea.Msg) { msgs <- msg })

	ran := false
	s.AfterFunc(time.Millisecond, func() { ran = true })

	var msg any
	select {
	case msg = <-msgs:
	case <-time.After(2 * time.Second):
		t.Fatal("timer never delivered")
	}
	if ran {
		t.Fatal("callback ran outside Update")
	}
	tm, ok := msg.(timerMsg)
	if !ok {
		t.Fatalf("delivered %T, want timerMsg", msg)
	}
	if !s.fire(tm.id) || !ran {
		t.Fatal("fire did not run the callback")
	}
	if s.fire(tm.id) {
		t.Fatal("callback ran twice")
	}
}

func TestScheduler_Stop(t *testing.T) {
	s := NewScheduler()
	s.Attach(func(tea.Msg) {})

	timer := s.AfterFunc(time.Hour, func() { t.Fatal("stopped timer ran") })
	if s.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", s.Pending())
	}
	if !timer.Stop() {
		t.Fatal("Stop() = false on a live timer")
	}
	if timer.Stop() {
		t.Fatal("second Stop() = true")
	}
	if s.Pending() != 0 {
		t.Fatalf("Pending() = %d after Stop, want 0", s.Pending())
	}
}

func TestScheduler_ImplementsDockScheduler(t *testing.T) {
	var _ dock.Scheduler = NewScheduler()
}
