package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/timevate/internal/format"
	"github.com/balkashynov/timevate/internal/models"
	"github.com/balkashynov/timevate/internal/parser"
)

// WinRecorder is the part of the tracking service the TUIs record wins into
type WinRecorder interface {
	AddMicroWin(win models.MicroWin) models.MicroWin
}

// SessionStopper is the part of the tracking service the stopwatch needs
type SessionStopper interface {
	StopSession() (models.TimeSession, bool)
	Now() time.Time
}

// RunChallengeTUI runs the countdown for c and records a micro-win when it
// reaches zero. It reports whether the challenge was completed.
func RunChallengeTUI(c models.Challenge, rec WinRecorder) (bool, error) {
	p := tea.NewProgram(NewChallengeModel(c), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ChallengeModel)
	if !ok || !m.Completed() {
		fmt.Printf("❌ Challenge \"%s\" abandoned with %s left.\n", c.Title, format.Duration(m.Remaining()))
		return false, nil
	}

	win := rec.AddMicroWin(c.Win(time.Time{}))
	fmt.Printf("🏆 Challenge complete! \"%s\" logged as a micro-win (%s)\n", win.Title, format.Duration(win.Duration))
	return true, nil
}

// RunSessionTUI shows the stopwatch for session. Pressing s stops and saves it;
// leaving any other way keeps the session running.
func RunSessionTUI(session models.TimeSession, svc SessionStopper) error {
	p := tea.NewProgram(NewSessionModel(session, svc.Now), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	m, ok := finalModel.(SessionModel)
	if !ok || !m.Stopping() {
		fmt.Println("⏱️  Session still running. Use 'timevate stop' to end it.")
		return nil
	}

	stopped, ok := svc.StopSession()
	if !ok {
		fmt.Println("No active session")
		return nil
	}
	fmt.Printf("⏹️  Session stopped after %s\n", format.Duration(stopped.Duration))
	return nil
}

// RunWinTUI opens the micro-win form, pre-filled from quick-entry parsing
func RunWinTUI(prefilled parser.ParsedWin, rec WinRecorder) error {
	p := tea.NewProgram(NewWinFormModel(prefilled))
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	m, ok := finalModel.(WinFormModel)
	if !ok {
		return nil
	}
	win, done := m.Result()
	if m.Cancelled() || !done {
		fmt.Println("❌ Micro-win cancelled.")
		return nil
	}

	win = rec.AddMicroWin(win)
	fmt.Printf("✅ Micro-win \"%s\" logged (%s)\n", win.Title, format.Duration(win.Duration))
	return nil
}
