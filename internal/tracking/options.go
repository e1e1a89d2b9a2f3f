package tracking

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/balkashynov/timevate/internal/clock"
)

// IDGenerator creates unique record ids
type IDGenerator interface {
	New() string
}

// UUIDGenerator issues time-ordered v7 UUIDs
type UUIDGenerator struct{}

func (UUIDGenerator) New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Option configures a Service
type Option func(*Service)

// WithClock replaces the wall clock
func WithClock(c clock.Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithLocation sets the time zone used for calendar-day comparisons
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithLogger sets the logger persistence failures are reported to
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithIDGenerator replaces the id source
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Service) { s.ids = g }
}
