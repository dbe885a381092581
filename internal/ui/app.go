package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/five82/dockbar/internal/dock"
	"github.com/five82/dockbar/internal/motion"
	"github.com/five82/dockbar/internal/prefs"
	"github.com/five82/dockbar/internal/state"
)

// Catalog is the set of items the dock can show, docked or not.
type Catalog interface {
	IDs() []dock.ItemID
	Snapshot() state.Snapshot
	Notify(fn func(dock.ItemID))
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Engine    *dock.Engine
	Driver    *motion.Driver
	Scheduler *Scheduler
	Catalog   Catalog
	Logger    *slog.Logger

	SlotWidth  int
	LogPath    string
	ThemeName  string
	ShowLabels bool
	PrefsPath  string

	// Now defaults to time.Now; tests pin it to the driver's clock.
	Now func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	engine    *dock.Engine
	driver    *motion.Driver
	sched     *Scheduler
	catalog   Catalog
	log       *slog.Logger
	keys      keyMap
	now       func() time.Time
	slotWidth int
	logPath   string
	prefsPath string

	// UI state
	theme      Theme
	screen     screen
	ready      bool
	showLabels bool
	showHelp   bool
	animating  bool

	// Dock interaction
	focus    int
	kbFocus  bool
	gesture  gesture
	keyDrag  keyDrag
	activity *activity

	// Log overlay
	showLogs    bool
	logViewport viewport.Model
}

// activity is the latest dock event, shown in the header. It is shared by
// every copy of the model because the engine listener writes to it.
type activity struct {
	text string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	slotWidth := opts.SlotWidth
	if slotWidth <= 0 {
		slotWidth = 8
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:        ctx,
		engine:     opts.Engine,
		driver:     opts.Driver,
		sched:      opts.Scheduler,
		catalog:    opts.Catalog,
		log:        logger.With("component", "ui"),
		keys:       DefaultKeyMap(),
		now:        now,
		slotWidth:  slotWidth,
		logPath:    opts.LogPath,
		prefsPath:  prefsPath,
		theme:      GetTheme(themeName),
		showLabels: opts.ShowLabels,
		focus:      opts.Engine.Anchors(),
		activity:   &activity{},
	}
	m.engine.Subscribe(m.observe)
	return m
}

// observe turns engine events into header text and launch bounces.
func (m Model) observe(ev dock.Event) {
	name := m.label(ev.Item)
	switch ev.Kind {
	case dock.EventDragStarted:
		m.activity.text = "dragging " + name
	case dock.EventOrderChanged:
		if ev.Intent.Kind != 0 {
			m.activity.text = fmt.Sprintf("%s: %s", name, ev.Intent.Kind)
		}
	case dock.EventDragEnded:
		if ev.Cancelled {
			m.activity.text = "returned " + name
		} else {
			m.activity.text = "placed " + name
		}
	case dock.EventRemoved:
		m.activity.text = "removed " + name
	case dock.EventLaunched:
		if ev.Running {
			m.activity.text = name + " is already running"
			return
		}
		m.activity.text = "launched " + name
		if m.driver != nil {
			m.driver.Jump(ev.Item)
		}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.screen = screen{width: msg.Width, height: msg.Height}
		m.relayout()
		m.resizeLogViewport()
		m.ready = true
		return m, nil

	case timerMsg:
		if m.sched != nil {
			m.sched.fire(msg.id)
		}
		m.followPointer()
		m.syncKeyDrag()
		return m, m.animate()

	case frameMsg:
		m.animating = false
		return m, m.animate()

	case runningMsg:
		// Running state is read live in View; a redraw is enough.
		return m, nil

	case logTickMsg:
		return m.handleLogTick()

	case logLinesMsg:
		m.handleLogLines(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if !m.screen.fits() {
		return fmt.Sprintf("Terminal too small: need %dx%d", MinWidth, MinHeight)
	}

	if m.showHelp {
		return zone.Scan(m.renderHelp())
	}
	if m.showLogs {
		return zone.Scan(m.renderLogs())
	}
	return zone.Scan(m.renderMain())
}

// renderMain renders the header, the desktop with the shelf, the dock bar
// and the footer.
func (m Model) renderMain() string {
	lines := m.renderCanvas().lines()
	lines[0] = m.renderHeader()
	lines[m.screen.footerRow()] = m.renderFooter()
	return strings.Join(lines, "\n")
}

// relayout fits the slots to the terminal width and re-measures the bar.
func (m *Model) relayout() {
	if !m.screen.fits() {
		return
	}
	m.engine.SetLayout(dockLayout{
		Width:     m.screen.width,
		SlotWidth: m.effectiveSlotWidth(),
		Top:       m.screen.iconRow(),
	})
}

// effectiveSlotWidth narrows slots when every item would not fit.
func (m Model) effectiveSlotWidth() int {
	n := len(m.catalog.IDs())
	if n == 0 {
		return m.slotWidth
	}
	w := m.slotWidth
	if fit := (m.screen.width - 2) / n; fit < w {
		w = fit
	}
	if w < 3 {
		w = 3
	}
	return w
}

// animate requests frames while anything on the bar is moving.
func (m *Model) animate() tea.Cmd {
	if m.animating || m.driver == nil || !m.driver.Active(m.now()) {
		return nil
	}
	m.animating = true
	return frameCmd()
}

func (m Model) label(id dock.ItemID) string {
	if id == "" {
		return ""
	}
	if l := m.engine.Icon(id).Label; l != "" {
		return l
	}
	return string(id)
}

// toggleLabels flips label rendering and persists it.
func (m *Model) toggleLabels() {
	m.showLabels = !m.showLabels
	m.savePrefs()
}

// cycleTheme moves to the next theme and persists it.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.savePrefs()
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, ShowLabels: m.showLabels}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.Warn("saving preferences failed", "path", m.prefsPath, "err", err)
	}
}

// Messages

type frameMsg time.Time

type runningMsg struct {
	id dock.ItemID
}

// Commands

func frameCmd() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until it exits or the
// context is cancelled.
func Run(opts Options) error {
	zone.NewGlobal()

	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(m.ctx),
	)
	if opts.Scheduler != nil {
		opts.Scheduler.Attach(p.Send)
	}
	opts.Catalog.Notify(func(id dock.ItemID) {
		p.Send(runningMsg{id: id})
	})

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
