// Package notify schedules local reminders. It is independent of the
// tracking service: nothing here reads or changes session state.
package notify

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Kinds of notification
const (
	KindHourlyReminder = "hourly_reminder"
	KindMicroGoal      = "micro_goal"
)

// Notification is a reminder to show the user
type Notification struct {
	Title string
	Body  string
	Kind  string
}

// Notifier delivers notifications
type Notifier interface {
	Notify(n Notification) error
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(Notification) error

func (f NotifierFunc) Notify(n Notification) error {
	return f(n)
}

// Scheduler fires notifications on timers. Delivery failures are logged and
// never reach the caller.
type Scheduler struct {
	notifier Notifier
	log      *slog.Logger

	mu     sync.Mutex
	timers map[int]*time.Timer
	nextID int
}

// NewScheduler returns a scheduler delivering through notifier
func NewScheduler(notifier Notifier, log *slog.Logger) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{
		notifier: notifier,
		log:      log,
		timers:   make(map[int]*time.Timer),
	}
}

// ScheduleOnce fires n once after the given delay
func (s *Scheduler) ScheduleOnce(after time.Duration, n Notification) error {
	if after <= 0 {
		return fmt.Errorf("delay must be positive, got %s", after)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.timers[id] = time.AfterFunc(after, func() {
		s.mu.Lock()
		_, live := s.timers[id]
		delete(s.timers, id)
		s.mu.Unlock()
		if live {
			s.deliver(n)
		}
	})
	return nil
}

// ScheduleRepeating fires n every interval until cancelled
func (s *Scheduler) ScheduleRepeating(interval time.Duration, n Notification) error {
	if interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", interval)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	var fire func()
	fire = func() {
		s.mu.Lock()
		if _, live := s.timers[id]; !live {
			s.mu.Unlock()
			return
		}
		s.timers[id] = time.AfterFunc(interval, fire)
		s.mu.Unlock()
		s.deliver(n)
	}
	s.timers[id] = time.AfterFunc(interval, fire)
	return nil
}

// HourlyReminder schedules the repeating "time check" reminder
func (s *Scheduler) HourlyReminder(interval time.Duration) error {
	return s.ScheduleRepeating(interval, Notification{
		Title: "⏰ Time Check",
		Body:  "How are you using this precious hour? Make every second count with Timevate!",
		Kind:  KindHourlyReminder,
	})
}

// MicroGoalReminder schedules a one-off reminder after the given number of seconds
func (s *Scheduler) MicroGoalReminder(title, body string, seconds int) error {
	return s.ScheduleOnce(time.Duration(seconds)*time.Second, Notification{
		Title: title,
		Body:  body,
		Kind:  KindMicroGoal,
	})
}

// CancelAll stops every scheduled notification
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

// Pending returns how many notifications are scheduled
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *Scheduler) deliver(n Notification) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("notifier panicked", "kind", n.Kind, "panic", r)
		}
	}()
	if err := s.notifier.Notify(n); err != nil {
		s.log.Error("failed to deliver notification", "kind", n.Kind, "title", n.Title, "error", err)
		return
	}
	s.log.Info("notification delivered", "kind", n.Kind, "title", n.Title)
}

// TerminalNotifier prints notifications to a terminal and rings the bell
type TerminalNotifier struct {
	w   io.Writer
	now func() time.Time
	mu  sync.Mutex
}

// NewTerminalNotifier writes to w
func NewTerminalNotifier(w io.Writer) *TerminalNotifier {
	return &TerminalNotifier{w: w, now: time.Now}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A78BFA"))
	timeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (t *TerminalNotifier) Notify(n Notification) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := fmt.Fprintf(t.w, "\a%s %s\n   %s\n",
		timeStyle.Render(t.now().Format("15:04")),
		titleStyle.Render(n.Title),
		n.Body)
	return err
}
