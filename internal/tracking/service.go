// Package tracking owns the session lifecycle, the micro-win log and the
// aggregates derived from them. State lives in memory; every mutation is
// mirrored to a db.Store in the background.
package tracking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/balkashynov/timevate/internal/clock"
	"github.com/balkashynov/timevate/internal/db"
	"github.com/balkashynov/timevate/internal/models"
)

// ErrSessionActive is returned by StartSession while another session is open
var ErrSessionActive = errors.New("session already active")

// Snapshot is a read-only copy of the service state
type Snapshot struct {
	TimeData       models.TimeData
	MicroWins      []models.MicroWin // newest first
	CurrentSession *models.TimeSession
}

// Service is the time-tracking store. Create one per process with New.
type Service struct {
	clock clock.Clock
	loc   *time.Location
	log   *slog.Logger
	ids   IDGenerator
	store db.Store

	mu       sync.Mutex
	timeData models.TimeData
	wins     []models.MicroWin
	current  *models.TimeSession

	w *writer
}

// New loads persisted state from store and starts the background writer.
// Unreadable values fall back to their empty defaults; New only fails on a nil store.
func New(ctx context.Context, store db.Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}

	s := &Service{
		clock: clock.System{},
		loc:   time.Local,
		log:   slog.Default(),
		ids:   UUIDGenerator{},
		store: store,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.load(ctx)
	s.w = newWriter(store, s.log)
	return s, nil
}

// load reads the three keys concurrently. Each one is independent: a missing
// or broken value only resets that part of the state.
func (s *Service) load(ctx context.Context) {
	var (
		timeData models.TimeData
		wins     []models.MicroWin
		current  *models.TimeSession
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if raw, ok := s.read(gctx, db.KeyTimeData); ok {
			var problems []error
			timeData, problems = decodeTimeData(raw)
			s.logProblems(db.KeyTimeData, problems)
		}
		return nil
	})
	g.Go(func() error {
		if raw, ok := s.read(gctx, db.KeyMicroWins); ok {
			var problems []error
			wins, problems = decodeMicroWins(raw)
			s.logProblems(db.KeyMicroWins, problems)
		}
		return nil
	})
	g.Go(func() error {
		if raw, ok := s.read(gctx, db.KeyCurrentSession); ok {
			var problems []error
			current, problems = decodeSession(raw)
			s.logProblems(db.KeyCurrentSession, problems)
		}
		return nil
	})
	_ = g.Wait() // readers never fail, they log

	// A stored session that was already stopped is not a current session
	if current != nil && !current.IsOpen() {
		current = nil
	}

	s.mu.Lock()
	s.timeData = timeData
	s.wins = wins
	s.current = current
	s.mu.Unlock()

	s.log.Debug("state loaded",
		"total_active_time", timeData.TotalActiveTime,
		"sessions", timeData.Sessions,
		"wins", len(wins),
		"open_session", current != nil)
}

func (s *Service) read(ctx context.Context, key string) (string, bool) {
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.log.Error("load failed", "key", key, "error", err)
		return "", false
	}
	return raw, ok
}

func (s *Service) logProblems(key string, problems []error) {
	for _, err := range problems {
		s.log.Warn("dropped unreadable stored data", "key", key, "error", err)
	}
}

// persist hands the current state to the writer. Callers hold s.mu.
func (s *Service) persist() {
	s.w.submit(snapshot{
		timeData: s.timeData,
		wins:     slices.Clone(s.wins),
		session:  cloneSession(s.current),
	})
}

// StartSession opens a new session starting now. If one is already open it is
// left untouched and ErrSessionActive is returned.
func (s *Service) StartSession() (models.TimeSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		return *s.current, ErrSessionActive
	}

	session := models.TimeSession{
		ID:        s.ids.New(),
		StartTime: s.clock.Now(),
	}
	s.current = &session
	s.persist()

	return session, nil
}

// StopSession closes the open session and folds its whole seconds into the
// aggregate. Without an open session it does nothing and reports false.
func (s *Service) StopSession() (models.TimeSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return models.TimeSession{}, false
	}

	end := s.clock.Now()
	duration := int(end.Sub(s.current.StartTime) / time.Second)
	if duration < 0 {
		duration = 0
	}

	stopped := *s.current
	stopped.EndTime = &end
	stopped.Duration = duration

	s.timeData = models.TimeData{
		TotalActiveTime: s.timeData.TotalActiveTime + duration,
		Sessions:        s.timeData.Sessions + 1,
		LastActive:      &end,
	}
	s.current = nil
	s.persist()

	return stopped, true
}

// AddMicroWin records win as the newest entry. A zero CompletedAt means now and
// an empty ID gets a generated one.
func (s *Service) AddMicroWin(win models.MicroWin) models.MicroWin {
	s.mu.Lock()
	defer s.mu.Unlock()

	if win.ID == "" {
		win.ID = s.ids.New()
	}
	if win.CompletedAt.IsZero() {
		win.CompletedAt = s.clock.Now()
	}
	if win.Duration < 0 {
		win.Duration = 0
	}

	s.wins = slices.Insert(s.wins, 0, win)
	s.persist()

	return win
}

// ClearAll wipes the in-memory state and every persisted key
func (s *Service) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.timeData = models.TimeData{}
	s.wins = nil
	s.current = nil

	if err := s.w.clear(ctx); err != nil {
		s.log.Error("clear failed", "error", err)
		return fmt.Errorf("failed to clear stored data: %w", err)
	}
	return nil
}

// Snapshot returns a copy of the current state
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		TimeData:       s.timeData,
		MicroWins:      slices.Clone(s.wins),
		CurrentSession: cloneSession(s.current),
	}
}

// CurrentSession returns the open session, if any
func (s *Service) CurrentSession() (models.TimeSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return models.TimeSession{}, false
	}
	return *s.current, true
}

// Now returns the service clock's current time in the service's time zone
func (s *Service) Now() time.Time {
	return s.clock.Now().In(s.loc)
}

// Location returns the time zone used for calendar-day comparisons
func (s *Service) Location() *time.Location {
	return s.loc
}

// Flush waits until everything changed so far has been written to the store
func (s *Service) Flush(ctx context.Context) error {
	return s.w.flush(ctx)
}

// Close writes pending state and stops the background writer. Mutations after
// Close still change memory but are no longer saved.
func (s *Service) Close(ctx context.Context) error {
	return s.w.close(ctx)
}

func cloneSession(t *models.TimeSession) *models.TimeSession {
	if t == nil {
		return nil
	}
	c := *t
	if t.EndTime != nil {
		end := *t.EndTime
		c.EndTime = &end
	}
	return &c
}
