package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dockbar/internal/logtail"
)

// Messages

type logTickMsg time.Time

type logLinesMsg struct {
	lines []string
	err   error
}

// Commands

func logTickCmd() tea.Cmd {
	return tea.Tick(LogRefreshInterval, func(t time.Time) tea.Msg {
		return logTickMsg(t)
	})
}

func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, LogTailLines)
		return logLinesMsg{lines: lines, err: err}
	}
}

// openLogs shows the log overlay and starts following the file.
func (m *Model) openLogs() tea.Cmd {
	m.showLogs = true
	m.resizeLogViewport()
	if m.logPath == "" {
		m.logViewport.SetContent(m.theme.Styles().MutedText.Render("Logging to a file is disabled."))
		return nil
	}
	return tea.Batch(readLogsCmd(m.logPath), logTickCmd())
}

// handleLogTick rereads the log while the overlay is open.
func (m Model) handleLogTick() (tea.Model, tea.Cmd) {
	if !m.showLogs || m.logPath == "" {
		return m, nil
	}
	return m, tea.Batch(readLogsCmd(m.logPath), logTickCmd())
}

// handleLogLines replaces the overlay content, staying pinned to the bottom
// if the user had not scrolled up.
func (m *Model) handleLogLines(msg logLinesMsg) {
	styles := m.theme.Styles()
	follow := m.logViewport.AtBottom()

	switch {
	case msg.err != nil:
		m.logViewport.SetContent(styles.DangerText.Render("Reading log failed: " + msg.err.Error()))
		return
	case len(msg.lines) == 0:
		m.logViewport.SetContent(styles.MutedText.Render("No log entries yet."))
		return
	}

	m.logViewport.SetContent(strings.Join(logtail.ColorizeLines(msg.lines, m.theme.LogStyles()), "\n"))
	if follow {
		m.logViewport.GotoBottom()
	}
}

// handleLogsKey processes keyboard input while the log overlay is open.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Logs), key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
		m.showLogs = false
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// logModal is the frame around the log viewport.
func (m Model) logModal() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(0, 1)
}

// resizeLogViewport fits the viewport inside the modal.
func (m *Model) resizeLogViewport() {
	frame := m.logModal()
	width := m.screen.width - 4 - frame.GetHorizontalFrameSize()
	// Title line plus a rule.
	height := m.screen.height - 2 - frame.GetVerticalFrameSize() - 2
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if m.logViewport.Width == 0 && m.logViewport.Height == 0 {
		m.logViewport = viewport.New(width, height)
		return
	}
	m.logViewport.Width = width
	m.logViewport.Height = height
}

// renderLogs renders the log overlay.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("dockbar log"))
	if m.logPath != "" {
		b.WriteString(styles.FaintText.Render("  " + m.logPath))
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", m.logViewport.Width)))
	b.WriteString("\n")
	b.WriteString(m.logViewport.View())

	return lipgloss.Place(
		m.screen.width,
		m.screen.height,
		lipgloss.Center,
		lipgloss.Center,
		m.logModal().Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
