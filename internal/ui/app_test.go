package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
	zone "github.com/lrstanley/bubblezone"

	"github.com/five82/dockbar/internal/dock"
	"github.com/five82/dockbar/internal/motion"
	"github.com/five82/dockbar/internal/prefs"
	"github.com/five82/dockbar/internal/state"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

const window = 250 * time.Millisecond

type fakeCatalog struct {
	ids      []dock.ItemID
	running  map[dock.ItemID]bool
	launched []dock.ItemID
}

func (c *fakeCatalog) IDs() []dock.ItemID { return c.ids }
func (c *fakeCatalog) Snapshot() state.Snapshot { return state.Snapshot{} }
func (c *fakeCatalog) Notify(fn func(dock.ItemID)) {}

func (c *fakeCatalog) ResolveIcon(id dock.ItemID) dock.Icon {
	return dock.Icon{Image: strings.ToUpper(string(id)[:1]), Label: string(id), Running: c.running[id]}
}

func (c *fakeCatalog) Launch(id dock.ItemID) {
	c.launched = append(c.launched, id)
	c.running[id] = true
}

type uiHarness struct {
	m         Model
	sched     *dock.ManualScheduler
	catalog   *fakeCatalog
	prefsPath string
}

// newUI builds an 80x12 model with 8-wide slots. For three docked items the
// slots are [28,36) [36,44) [44,52) on row 8; the jump row is 7 and the
// shelf starts at column 2 on row 2.
func newUI(t *testing.T, docked []string, shelf ...string) *uiHarness {
	t.Helper()
	sched := &dock.ManualScheduler{}
	epoch := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)
	now := func() time.Time { return epoch.Add(sched.Now()) }

	cat := &fakeCatalog{running: map[dock.ItemID]bool{}}
	for _, name := range append(append([]string{}, docked...), shelf...) {
		cat.ids = append(cat.ids, dock.ItemID(name))
	}

	driver := motion.New(motion.Options{Scheduler: sched, Now: now})
	engine := dock.New(itemIDs(docked...), dock.Options{
		Anchors:   1,
		Debounce:  window,
		Scheduler: sched,
		Animator:  driver,
		Shell:     cat,
		Strict:    true,
	})

	h := &uiHarness{
		sched:     sched,
		catalog:   cat,
		prefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	}
	h.m = New(Options{
		Engine:     engine,
		Driver:     driver,
		Catalog:    cat,
		SlotWidth:  8,
		ShowLabels: true,
		PrefsPath:  h.prefsPath,
		Now:        now,
	})
	h.send(tea.WindowSizeMsg{Width: 80, Height: 12})
	return h
}

func itemIDs(names ...string) []dock.ItemID {
	out := make([]dock.ItemID, len(names))
	for i, n := range names {
		out[i] = dock.ItemID(n)
	}
	return out
}

func (h *uiHarness) send(msg tea.Msg) tea.Cmd {
	model, cmd := h.m.Update(msg)
	h.m = model.(Model)
	return cmd
}

// elapse advances the clock in small steps, delivering a timerMsg after each
// one the way the program does when a scheduled callback has run.
func (h *uiHarness) elapse(d time.Duration) {
	const step = 10 * time.Millisecond
	for ; d > 0; d -= step {
		h.sched.Advance(min(step, d))
		h.send(timerMsg{})
	}
}

func (h *uiHarness) press(x, y int) {
	h.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func (h *uiHarness) move(x, y int) {
	h.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
}

func (h *uiHarness) release(x, y int) {
	h.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
}

func (h *uiHarness) key(k tea.KeyType) {
	h.send(tea.KeyMsg{Type: k})
}

func (h *uiHarness) runes(s string) {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (h *uiHarness) wantOrder(t *testing.T, want ...string) {
	t.Helper()
	if diff := cmp.Diff(itemIDs(want...), h.m.engine.Order()); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func (h *uiHarness) wantNoSession(t *testing.T) {
	t.Helper()
	if s, ok := h.m.engine.Session(); ok {
		t.Fatalf("drag of %s still active", s.Dragging)
	}
}

func TestMouse_DragReorders(t *testing.T) {
	h := newUI(t, []string{"finder", "browser", "calendar"})

	h.press(40, 8)
	h.move(46, 8) // left half of calendar
	h.wantOrder(t, "finder", "calendar", "browser")

	h.release(46, 8)
	if _, ok := h.m.engine.Session(); !ok {
		t.Fatal("drop applied before the debounce window closed")
	}
	h.sched.Advance(window)
	h.wantNoSession(t)
	h.wantOrder(t, "finder", "calendar", "browser")
	if len(h.catalog.launched) != 0 {
		t.Fatalf("drag launched %v", h.catalog.launched)
	}
}

func TestMouse_ClickLaunchesAndBounces(t *testing.T) {
	h := newUI(t, []string{"finder", "browser", "calendar"})

	h.press(40, 9) // label row counts as the slot
	h.release(40, 9)

	if diff := cmp.Diff(itemIDs("browser"), h.catalog.launched); diff != "" {
		t.Fatalf("launched mismatch (-want +got):\n%s", diff)
	}
	if got := h.m.activity.text; got != "launched browser" {
		t.Fatalf("activity = %q, want %q", got, "launched browser")
	}
	if !h.m.driver.Active(h.m.now()) {
		t.Fatal("launch did not start a bounce")
	}
	h.sched.Advance(time.Second)
	if h.m.driver.Active(h.m.now()) {
		t.Fatal("bounce never settled")
	}
}

func TestMouse_PinnedItemDoesNotDragOrLaunch(t *testing.T) {
	h := newUI(t, []string{"finder", "browser", "calendar"})

	h.press(30, 8)
	h.move(40, 8)
	h.wantNoSession(t)
	h.release(40, 8)

	h.wantOrder(t, "finder", "browser", "calendar")
	if len(h.catalog.launched) != 0 {
		t.Fatalf("pinned drag launched %v", h.catalog.launched)
	}
}

func TestMouse_DragOffBarRemoves(t *testing.T) {
	h := newUI(t, []string{"finder", "browser", "calendar"})

	h.press(40, 8)
	h.move(40, 3)
	h.wantOrder(t, "finder", "calendar")
	s, ok := h.m.engine.Session()
	if !ok || !s.Limbo {
		t.Fatalf("session = %+v, %v; want browser in limbo", s, ok)
	}

	h.release(40, 3)
	h.sched.Advance(window)
	h.wantNoSession(t)
	h.wantOrder(t, "finder", "calendar")

	shelf := h.m.shelf()
	if len(shelf) != 1 || shelf[0].id != "browser" {
		t.Fatalf("shelf = %+v, want browser", shelf)
	}
}

// With four items the slots are [24,32) [32,40) [40,48) [48,56). Lifting d
// recenters the rest to [28,36) [36,44) [44,52), and they slide for a window.
func TestMouse_ReleaseOverSlidingSlotKeepsItem(t *testing.T) {
	h := newUI(t, []string{"a", "b", "c", "d"})

	h.press(50, 8)
	h.move(50, 3)
	h.wantOrder(t, "a", "b", "c")
	h.move(50, 8) // right half of c, which is still sliding
	h.release(50, 8)
	h.wantOrder(t, "a", "b", "c")

	h.elapse(time.Second)
	h.wantNoSession(t)
	h.wantOrder(t, "a", "b", "c", "d")
}

func TestMouse_HoldingStillOverSlidingSlotInserts(t *testing.T) {
	h := newUI(t, []string{"a", "b", "c", "d"})

	h.press(50, 8)
	h.move(50, 3)
	h.move(50, 8)
	h.elapse(time.Second)
	h.wantOrder(t, "a", "b", "c", "d")
	if s, ok := h.m.engine.Session(); !ok || s.Limbo {
		t.Fatalf("session = %+v, %v; want d back on the bar", s, ok)
	}

	h.release(50, 8)
	h.elapse(window)
	h.wantNoSession(t)
	h.wantOrder(t, "a", "b", "c", "d")
}

func TestMouse_ReleaseOffBarAfterReturningRemoves(t *testing.T) {
	h := newUI(t, []string{"a", "b", "c", "d"})

	h.press(50, 8)
	h.move(50, 3)
	h.move(50, 8)
	h.move(50, 3)
	h.release(50, 3)
	h.elapse(time.Second)
	h.wantNoSession(t)
	h.wantOrder(t, "a", "b", "c")
}

func TestMouse_ShelfItemDraggedIn(t *testing.T) {
	h := newUI(t, []string{"finder", "browser", "calendar"}, "notes")

	h.press(5, 2)
	h.move(30, 8) // left half of the leftmost slot: dead zone
	h.wantOrder(t, "finder", "browser", "calendar")
	h.move(34, 8) // right half
	h.wantOrder(t, "finder", "notes", "browser", "calendar")

	h.release(34, 8)
	h.sched.Advance(window)
	h.wantNoSession(t)
	if shelf := h.m.shelf(); len(shelf) != 0 {
		t.Fatalf("shelf = %+v, want empty", shelf)
	}
}

func TestMouse_EscapeCancelsDrag(t *testing.T) {
	h := newUI(t, []string{"finder", "browser", "calendar"})

	h.press(40, 8)
	h.move(46, 8)
	h.wantOrder(t, "finder", "calendar", "browser")

	h.key(tea.KeyEsc)
	h.wantNoSession(t)
	h.wantOrder(t, "finder", "browser", "calendar")

	// The rest of the gesture is ignored.
	h.move(50, 8)
	h.release(50, 8)
	h.wantOrder(t, "finder", "browser", "calendar")
	if len(h.catalog.launched) != 0 {
		t.Fatalf("cancelled drag launched %v", h.catalog.launched)
	}
}

func TestKeyboard_MoveRight(t *testing.T) {
	h := newUI(t, []string{"finder", "browser", "calendar"})

	h.key(tea.KeySpace)
	if _, ok := h.m.engine.Session(); !ok {
		t.Fatal("space did not pick up the focused item")
	}
	h.key(tea.KeyRight)
	h.wantOrder(t, "finder", "calendar", "browser")

	h.key(tea.KeyEnter)
	h.sched.Advance(window)
	h.send(timerMsg{})
	h.wantNoSession(t)
	if h.m.keyDrag.active {
		t.Fatal("keyboard drag still active after drop")
	}
	if h.m.focus != 2 {
		t.Fatalf("focus = %d, want 2", h.m.focus)
	}
}

func TestKeyboard_FocusClampsAndPinnedStays(t *testing.T) {
	h := newUI(t, []string{"finder", "browser", "calendar"})

	h.key(tea.KeyLeft)
	h.key(tea.KeyLeft)
	if h.m.focus != 0 {
		t.Fatalf("focus = %d, want 0", h.m.focus)
	}
	// The pinned item can be focused and launched but not picked up.
	h.key(tea.KeySpace)
	h.wantNoSession(t)
	h.key(tea.KeyEnter)
	if diff := cmp.Diff(itemIDs("finder"), h.catalog.launched); diff != "" {
		t.Fatalf("launched mismatch (-want +got):\n%s", diff)
	}
}

func TestKeyboard_LiftAndPutBack(t *testing.T) {
	h := newUI(t, []string{"finder", "browser", "calendar"})

	h.key(tea.KeySpace)
	h.runes("x")
	h.wantOrder(t, "finder", "calendar")

	// Slots are still sliding together; confirming waits.
	h.key(tea.KeyEnter)
	if _, ok := h.m.engine.Session(); !ok {
		t.Fatal("drop went through while the bar was moving")
	}
	h.wantOrder(t, "finder", "calendar")

	// Once they settle the pending confirm puts the item back.
	h.elapse(window)
	h.wantOrder(t, "finder", "browser", "calendar")
	h.elapse(window)
	h.wantNoSession(t)
	h.wantOrder(t, "finder", "browser", "calendar")
}

func TestKeyboard_ConfirmAfterQueuedLiftPutsBack(t *testing.T) {
	h := newUI(t, []string{"a", "b", "c", "d"})

	h.key(tea.KeyRight)
	h.key(tea.KeySpace) // picks up c
	h.key(tea.KeyRight)
	h.wantOrder(t, "a", "b", "d", "c")

	// The lift waits behind the shift's window, so c is still on the bar
	// when enter arrives.
	h.runes("x")
	h.key(tea.KeyEnter)
	h.wantOrder(t, "a", "b", "d", "c")

	h.elapse(2 * time.Second)
	h.wantNoSession(t)
	h.wantOrder(t, "a", "b", "d", "c")
}

func TestKeyboard_LiftTwiceRemoves(t *testing.T) {
	h := newUI(t, []string{"finder", "browser", "calendar"})

	h.key(tea.KeySpace)
	h.runes("x")
	h.runes("x")
	h.sched.Advance(window)
	h.wantNoSession(t)
	h.wantOrder(t, "finder", "calendar")
}

func TestView_RendersDockAndFooter(t *testing.T) {
	h := newUI(t, []string{"finder", "browser", "calendar"}, "notes")

	view := ansi.Strip(h.m.View())
	lines := strings.Split(view, "\n")
	if len(lines) != 12 {
		t.Fatalf("view has %d lines, want 12", len(lines))
	}
	for _, want := range []string{"finder", "browser", "calendar"} {
		if !strings.Contains(lines[9], want) {
			t.Fatalf("label row %q missing %q", lines[9], want)
		}
	}
	if !strings.Contains(lines[3], "notes") {
		t.Fatalf("shelf row %q missing notes", lines[3])
	}
	if !strings.Contains(lines[0], "dockbar") {
		t.Fatalf("header %q missing logo", lines[0])
	}
	if !strings.Contains(lines[11], "? help") {
		t.Fatalf("footer %q missing help button", lines[11])
	}

	h.runes("l")
	view = ansi.Strip(h.m.View())
	if strings.Contains(strings.Split(view, "\n")[9], "browser") {
		t.Fatal("labels still drawn after toggling them off")
	}
}

func TestView_TooSmall(t *testing.T) {
	h := newUI(t, []string{"finder"})
	h.send(tea.WindowSizeMsg{Width: 10, Height: 4})
	if got := h.m.View(); !strings.Contains(got, "too small") {
		t.Fatalf("View() = %q", got)
	}
}

func TestThemeCyclePersists(t *testing.T) {
	h := newUI(t, []string{"finder", "browser"})

	h.runes("T")
	if h.m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", h.m.theme.Name)
	}
	p, err := prefs.Load(h.prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if p.Theme != "Kanagawa" || !p.ShowLabels {
		t.Fatalf("saved prefs = %+v, want Kanagawa with labels", p)
	}
}

func TestHelpOverlayClosesOnAnyKey(t *testing.T) {
	h := newUI(t, []string{"finder"})

	h.runes("?")
	if !h.m.showHelp {
		t.Fatal("help not shown")
	}
	if view := ansi.Strip(h.m.View()); !strings.Contains(view, "Keyboard & Mouse") {
		t.Fatal("help overlay missing title")
	}
	h.runes("z")
	if h.m.showHelp {
		t.Fatal("help still shown")
	}
}
