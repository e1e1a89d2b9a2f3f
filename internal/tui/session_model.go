package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/timevate/internal/format"
	"github.com/balkashynov/timevate/internal/models"
)

// SessionModel represents the TUI model for an open time-tracking session
type SessionModel struct {
	width   int
	height  int
	session models.TimeSession
	now     func() time.Time

	// Timer state
	elapsed time.Duration

	// Animation state
	timerAnimation int

	// UI state
	stopping bool // True when user pressed S and we're stopping
	exiting  bool // True when user pressed ESC/Q and we're exiting without stopping
}

// timerTickMsg is sent every second to update the timer
type timerTickMsg struct{}

// animationTickMsg is sent for faster animations
type animationTickMsg struct{}

// NewSessionModel creates a stopwatch over session; now may be nil
func NewSessionModel(session models.TimeSession, now func() time.Time) SessionModel {
	if now == nil {
		now = time.Now
	}
	return SessionModel{
		session: session,
		now:     now,
		elapsed: session.Elapsed(now()),
	}
}

// Init starts both timer and animation tickers
func (m SessionModel) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(time.Second, func(time.Time) tea.Msg {
			return timerTickMsg{}
		}),
		tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
			return animationTickMsg{}
		}),
	)
}

// Update handles messages
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		m.elapsed = m.session.Elapsed(m.now())

		// Continue ticking if not stopping or exiting
		if !m.stopping && !m.exiting {
			return m, tea.Tick(time.Second, func(time.Time) tea.Msg {
				return timerTickMsg{}
			})
		}
		return m, nil

	case animationTickMsg:
		m.timerAnimation = (m.timerAnimation + 1) % 4

		if !m.stopping && !m.exiting {
			return m, tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
				return animationTickMsg{}
			})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "S":
			m.stopping = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.exiting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// Stopping reports whether the user asked to stop and save the session
func (m SessionModel) Stopping() bool { return m.stopping }

// Exiting reports whether the user left the screen with the session still running
func (m SessionModel) Exiting() bool { return m.exiting }

// Elapsed returns the elapsed time shown on the clock
func (m SessionModel) Elapsed() time.Duration { return m.elapsed }

// View renders the session TUI
func (m SessionModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	var components []string

	animChars := []string{"⏱", "⏲", "⏱", "⏲"}
	animChar := animChars[m.timerAnimation]
	components = append(components, lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render(fmt.Sprintf("%s  ACTIVE SESSION  %s", animChar, animChar)))

	now := m.now()
	components = append(components, lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render(strings.ToUpper(format.WordAt(now))))

	components = append(components, renderBigClock(m.elapsed, ColorAccentBright, m.width))

	started := fmt.Sprintf("Started at %s", m.session.StartTime.Format("15:04:05"))
	components = append(components, lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render(started))

	content := strings.Join(components, "\n\n")
	panel := lipgloss.NewStyle().
		Width(m.width).
		Height(max(contentHeight, 1)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, panel, helpBar)
}

// renderHelpBar renders the help bar at the bottom
func (m SessionModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	return helpStyle.Render("s stop & save · esc/q exit (keep running) · ctrl+c force quit")
}
