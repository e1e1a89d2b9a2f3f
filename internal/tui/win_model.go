package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/timevate/internal/models"
	"github.com/balkashynov/timevate/internal/parser"
)

// Step represents the current step in the win form
type Step int

const (
	StepTitle Step = iota
	StepCategory
	StepDuration
	StepComplete
)

// WinFormModel collects a micro-win interactively
type WinFormModel struct {
	currentStep Step
	inputs      []textinput.Model
	width       int
	height      int

	// State
	completed     bool
	cancelled     bool
	validationErr string
	win           models.MicroWin
}

// NewWinFormModel creates the form, pre-filled from quick-entry parsing
func NewWinFormModel(prefilled parser.ParsedWin) WinFormModel {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[StepTitle].Placeholder = "What did you do? (required)"
	inputs[StepTitle].CharLimit = 200
	inputs[StepTitle].Focus()

	inputs[StepCategory].Placeholder = "Category like Health, Learning (Enter to skip)"
	inputs[StepCategory].CharLimit = 50

	inputs[StepDuration].Placeholder = "How long? 60, 5m, 1 hour (required)"
	inputs[StepDuration].CharLimit = 20

	inputs[StepTitle].SetValue(prefilled.Title)
	inputs[StepCategory].SetValue(prefilled.Category)
	if prefilled.Duration > 0 {
		inputs[StepDuration].SetValue(fmt.Sprintf("%d", prefilled.Duration))
	}

	return WinFormModel{
		currentStep: StepTitle,
		inputs:      inputs,
	}
}

// Init initializes the model
func (m WinFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m WinFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for i := range m.inputs {
			m.inputs[i].Width = max(20, min(m.width-10, 60))
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter", "tab":
			return m.nextStep()
		case "shift+tab":
			return m.prevStep()
		}
	}

	if m.currentStep >= StepComplete {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.currentStep], cmd = m.inputs[m.currentStep].Update(msg)
	m.validationErr = ""
	return m, cmd
}

func (m WinFormModel) value(step Step) string {
	return strings.TrimSpace(m.inputs[step].Value())
}

// nextStep validates the current field and moves on, finishing after the duration
func (m WinFormModel) nextStep() (tea.Model, tea.Cmd) {
	switch m.currentStep {
	case StepTitle:
		if m.value(StepTitle) == "" {
			m.validationErr = "Title is required"
			return m, nil
		}
	case StepDuration:
		seconds, err := parser.ParseDuration(m.value(StepDuration))
		if err != nil {
			m.validationErr = err.Error()
			return m, nil
		}
		m.win = models.MicroWin{
			Title:    m.value(StepTitle),
			Category: m.value(StepCategory),
			Duration: seconds,
		}
		m.completed = true
		m.currentStep = StepComplete
		return m, tea.Quit
	}

	m.validationErr = ""
	m.inputs[m.currentStep].Blur()
	m.currentStep++
	return m, m.inputs[m.currentStep].Focus()
}

func (m WinFormModel) prevStep() (tea.Model, tea.Cmd) {
	if m.currentStep == StepTitle || m.currentStep >= StepComplete {
		return m, nil
	}
	m.validationErr = ""
	m.inputs[m.currentStep].Blur()
	m.currentStep--
	return m, m.inputs[m.currentStep].Focus()
}

// Result returns the collected win once the form is completed
func (m WinFormModel) Result() (models.MicroWin, bool) {
	return m.win, m.completed
}

// Cancelled reports whether the user left without saving
func (m WinFormModel) Cancelled() bool { return m.cancelled }

// View renders the form
func (m WinFormModel) View() string {
	if m.cancelled || m.completed {
		return ""
	}

	labels := []string{"Title", "Category", "Duration"}
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	activeLabelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Render("🏆 Log a micro-win"))
	b.WriteString("\n\n")

	for i, input := range m.inputs {
		style := labelStyle
		if Step(i) == m.currentStep {
			style = activeLabelStyle
		}
		b.WriteString(style.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	if m.validationErr != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render("⚠ " + m.validationErr))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Render("enter next · shift+tab back · esc cancel"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Render(b.String())
}
