package tracking

import (
	"math"
	"time"

	"github.com/balkashynov/timevate/internal/models"
)

const weekWindowDays = 7

// sameDay compares calendar dates in loc, not a rolling 24 hour window
func sameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// TimeSpentToday reports today's activity. Sessions counts today's micro-wins
// and TotalActiveTime sums their durations. The cumulative session total is
// added on top only when the last session ended today; LastActive follows the
// same rule.
func (s *Service) TimeSpentToday() models.TimeData {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()

	var today models.TimeData
	for _, w := range s.wins {
		if sameDay(w.CompletedAt, now, s.loc) {
			today.Sessions++
			today.TotalActiveTime += w.Duration
		}
	}

	if last := s.timeData.LastActive; last != nil && sameDay(*last, now, s.loc) {
		today.TotalActiveTime += s.timeData.TotalActiveTime
		t := *last
		today.LastActive = &t
	}

	return today
}

// WeeklyStats summarises micro-wins completed at or after now minus seven days.
// AverageDaily always divides by seven.
func (s *Service) WeeklyStats() models.WeeklyStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	windowStart := s.clock.Now().In(s.loc).AddDate(0, 0, -weekWindowDays)

	var stats models.WeeklyStats
	for _, w := range s.wins {
		if w.CompletedAt.Before(windowStart) {
			continue
		}
		stats.TotalWins++
		stats.TotalTime += w.Duration
	}
	stats.AverageDaily = int(math.Round(float64(stats.TotalWins) / weekWindowDays))

	return stats
}

// TodayWins returns today's micro-wins, newest first
func (s *Service) TodayWins() []models.MicroWin {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	var wins []models.MicroWin
	for _, w := range s.wins {
		if sameDay(w.CompletedAt, now, s.loc) {
			wins = append(wins, w)
		}
	}
	return wins
}

// Streak counts consecutive calendar days, ending today, with at least one
// micro-win. A day without wins today means a streak of zero.
func (s *Service) Streak() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	days := make(map[string]bool, len(s.wins))
	for _, w := range s.wins {
		days[w.CompletedAt.In(s.loc).Format(time.DateOnly)] = true
	}

	streak := 0
	day := s.clock.Now().In(s.loc)
	for days[day.Format(time.DateOnly)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
