package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/timevate/internal/format"
	"github.com/balkashynov/timevate/internal/models"
)

// countdownTickMsg is sent every second while a challenge runs
type countdownTickMsg struct{}

type challengeKeyMap struct {
	Pause key.Binding
	Quit  key.Binding
}

func (k challengeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Quit}
}

func (k challengeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var challengeKeys = challengeKeyMap{
	Pause: key.NewBinding(
		key.WithKeys(" ", "space", "p"),
		key.WithHelp("space", "pause/resume"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "give up"),
	),
}

// ChallengeModel counts a challenge down to zero. Paused seconds do not count,
// so completion always means the full nominal duration was done.
type ChallengeModel struct {
	width  int
	height int

	challenge models.Challenge
	remaining int // seconds

	paused    bool
	completed bool
	abandoned bool

	progress progress.Model
	help     help.Model
	keys     challengeKeyMap
}

// NewChallengeModel creates a countdown for c
func NewChallengeModel(c models.Challenge) ChallengeModel {
	return ChallengeModel{
		challenge: c,
		remaining: c.Duration,
		progress: progress.New(
			progress.WithGradient(ColorAccentMain, ColorAccentBright),
			progress.WithWidth(40),
		),
		help: help.New(),
		keys: challengeKeys,
	}
}

func countdownTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return countdownTickMsg{}
	})
}

// Init starts the countdown
func (m ChallengeModel) Init() tea.Cmd {
	if m.remaining <= 0 {
		return func() tea.Msg { return countdownTickMsg{} }
	}
	return countdownTick()
}

// Update handles messages
func (m ChallengeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case countdownTickMsg:
		if m.completed || m.abandoned {
			return m, nil
		}
		if !m.paused && m.remaining > 0 {
			m.remaining--
		}
		if m.remaining <= 0 {
			m.remaining = 0
			m.completed = true
			return m, tea.Quit
		}
		return m, countdownTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = max(10, min(m.width-8, 60))
		m.help.Width = m.width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			m.abandoned = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// Completed reports whether the countdown reached zero
func (m ChallengeModel) Completed() bool { return m.completed }

// Abandoned reports whether the user quit before the end
func (m ChallengeModel) Abandoned() bool { return m.abandoned }

// Paused reports whether the countdown is on hold
func (m ChallengeModel) Paused() bool { return m.paused }

// Remaining returns the seconds left
func (m ChallengeModel) Remaining() int { return m.remaining }

// percent done, 0 to 1
func (m ChallengeModel) percent() float64 {
	if m.challenge.Duration <= 0 {
		return 1
	}
	return 1 - float64(m.remaining)/float64(m.challenge.Duration)
}

// View renders the countdown
func (m ChallengeModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	width := m.width

	var components []string

	header := "⚡  CHALLENGE  ⚡"
	headerColor := ColorAccentBright
	switch {
	case m.completed:
		header = "✔  DONE  ✔"
		headerColor = ColorSuccess
	case m.paused:
		header = "⏸  PAUSED  ⏸"
		headerColor = ColorWarning
	}
	components = append(components, lipgloss.NewStyle().
		Foreground(lipgloss.Color(headerColor)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width).
		Render(header))

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, titleStyle.Render(m.challenge.Title))

	clockColor := ColorAccentBright
	if m.paused {
		clockColor = ColorWarning
	}
	components = append(components, renderBigClock(time.Duration(m.remaining)*time.Second, clockColor, width))

	components = append(components, lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width).
		Render(m.progress.ViewAs(m.percent())))

	info := fmt.Sprintf("%s · %s", m.challenge.Category, format.Duration(m.challenge.Duration))
	components = append(components, centered(info, ColorSecondaryText, width))
	if m.challenge.Description != "" {
		components = append(components, centered(m.challenge.Description, ColorDisabledText, width))
	}

	content := strings.Join(components, "\n\n")
	helpBar := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width).
		Render(m.help.View(m.keys))

	panel := lipgloss.NewStyle().
		Width(width).
		Height(max(m.height-2, 1)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, panel, helpBar)
}
