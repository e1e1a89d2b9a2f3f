package notify

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/timevate/internal/logging"
)

type recorder struct {
	mu  sync.Mutex
	got []Notification
	err error
}

func (r *recorder) Notify(n Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, n)
	return r.err
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.got)
}

func TestScheduleOnceFiresOnce(t *testing.T) {
	rec := &recorder{}
	s := NewScheduler(rec, logging.Discard())

	require.NoError(t, s.ScheduleOnce(10*time.Millisecond, Notification{Title: "Stretch", Kind: KindMicroGoal}))
	assert.Equal(t, 1, s.Pending())

	assert.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 1, rec.count())
	assert.Equal(t, 0, s.Pending())
}

func TestScheduleRepeatingFiresUntilCancelled(t *testing.T) {
	rec := &recorder{}
	s := NewScheduler(rec, logging.Discard())

	require.NoError(t, s.HourlyReminder(10*time.Millisecond))
	assert.Eventually(t, func() bool { return rec.count() >= 3 }, 2*time.Second, 5*time.Millisecond)

	s.CancelAll()
	assert.Equal(t, 0, s.Pending())
	n := rec.count()
	time.Sleep(50 * time.Millisecond)
	assert.LessOrEqual(t, rec.count(), n+1) // one delivery may already be in flight

	rec.mu.Lock()
	assert.Equal(t, KindHourlyReminder, rec.got[0].Kind)
	assert.Equal(t, "⏰ Time Check", rec.got[0].Title)
	rec.mu.Unlock()
}

func TestCancelAllBeforeFiring(t *testing.T) {
	rec := &recorder{}
	s := NewScheduler(rec, logging.Discard())

	require.NoError(t, s.MicroGoalReminder("Hydrate", "Drink a glass of water", 1))
	s.CancelAll()
	time.Sleep(1100 * time.Millisecond)
	assert.Equal(t, 0, rec.count())
}

func TestDeliveryFailuresAreSwallowed(t *testing.T) {
	rec := &recorder{err: errors.New("no display")}
	s := NewScheduler(rec, logging.Discard())

	require.NoError(t, s.ScheduleOnce(time.Millisecond, Notification{Title: "x"}))
	assert.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)
}

func TestPanickingNotifierDoesNotCrash(t *testing.T) {
	fired := make(chan struct{})
	s := NewScheduler(NotifierFunc(func(Notification) error {
		close(fired)
		panic("boom")
	}), logging.Discard())

	require.NoError(t, s.ScheduleOnce(time.Millisecond, Notification{Title: "x"}))
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("notification never fired")
	}
}

func TestRejectsNonPositiveDelays(t *testing.T) {
	s := NewScheduler(&recorder{}, logging.Discard())
	assert.Error(t, s.ScheduleOnce(0, Notification{}))
	assert.Error(t, s.ScheduleRepeating(-time.Second, Notification{}))
}

func TestTerminalNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewTerminalNotifier(&buf)
	n.now = func() time.Time { return time.Date(2026, 10, 16, 14, 5, 0, 0, time.UTC) }

	require.NoError(t, n.Notify(Notification{Title: "⏰ Time Check", Body: "Make every second count"}))

	out := buf.String()
	assert.Contains(t, out, "\a")
	assert.Contains(t, out, "14:05")
	assert.Contains(t, out, "Time Check")
	assert.Contains(t, out, "Make every second count")
}
