package tracking_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/timevate/internal/db"
	"github.com/balkashynov/timevate/internal/models"
	"github.com/balkashynov/timevate/internal/tracking"
)

func TestScenarioSessionWithDeepBreathingWin(t *testing.T) {
	clk := &fakeClock{now: base}
	svc := newService(t, db.NewMemoryStore(), clk)

	_, err := svc.StartSession()
	require.NoError(t, err)
	clk.Advance(10 * time.Second)
	svc.AddMicroWin(models.MicroWin{Title: "Deep Breathing Reset", Duration: 60, Category: "Mindfulness"})
	clk.Advance(60 * time.Second)
	_, ok := svc.StopSession()
	require.True(t, ok)

	snap := svc.Snapshot()
	assert.Equal(t, 70, snap.TimeData.TotalActiveTime)
	assert.Equal(t, 1, snap.TimeData.Sessions)
	require.Len(t, snap.MicroWins, 1)
	assert.Equal(t, 60, snap.MicroWins[0].Duration)

	today := svc.TimeSpentToday()
	assert.Equal(t, 1, today.Sessions)
	assert.Equal(t, 60+70, today.TotalActiveTime)
	require.NotNil(t, today.LastActive)
}

func TestScenarioWinsOnlyNoSessionTerm(t *testing.T) {
	clk := &fakeClock{now: base}
	svc := newService(t, db.NewMemoryStore(), clk)

	for _, d := range []int{60, 300, 3600} {
		svc.AddMicroWin(models.MicroWin{Title: "win", Duration: d, Category: "Learning"})
		clk.Advance(time.Minute)
	}

	today := svc.TimeSpentToday()
	assert.Equal(t, 3960, today.TotalActiveTime)
	assert.Equal(t, 3, today.Sessions)
	assert.Nil(t, today.LastActive)
}

func TestTimeSpentTodayIgnoresSessionTotalFromEarlierDay(t *testing.T) {
	clk := &fakeClock{now: base.AddDate(0, 0, -1)}
	svc := newService(t, db.NewMemoryStore(), clk)

	_, err := svc.StartSession()
	require.NoError(t, err)
	clk.Advance(time.Hour)
	svc.StopSession()
	svc.AddMicroWin(models.MicroWin{Title: "yesterday", Duration: 300})

	clk.Set(base)
	svc.AddMicroWin(models.MicroWin{Title: "today", Duration: 60})

	today := svc.TimeSpentToday()
	assert.Equal(t, 60, today.TotalActiveTime)
	assert.Equal(t, 1, today.Sessions)
	assert.Nil(t, today.LastActive)
}

func TestTimeSpentTodayUsesCalendarDayAcrossMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	start := time.Date(2026, time.October, 15, 23, 50, 0, 0, loc)
	clk := &fakeClock{now: start}

	svc, err := tracking.New(context.Background(), db.NewMemoryStore(),
		tracking.WithClock(clk),
		tracking.WithLocation(loc),
		tracking.WithIDGenerator(&seqIDs{}),
		tracking.WithLogger(quietLogger()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close(context.Background()) })

	_, err = svc.StartSession()
	require.NoError(t, err)
	clk.Advance(5 * time.Minute) // 23:55, still the 15th
	svc.AddMicroWin(models.MicroWin{Title: "before midnight", Duration: 60})
	clk.Advance(10 * time.Minute) // 00:05 on the 16th
	svc.AddMicroWin(models.MicroWin{Title: "after midnight", Duration: 300})
	_, ok := svc.StopSession()
	require.True(t, ok)

	today := svc.TimeSpentToday()
	assert.Equal(t, 1, today.Sessions)
	assert.Equal(t, 300+900, today.TotalActiveTime)
	require.NotNil(t, today.LastActive)

	wins := svc.TodayWins()
	require.Len(t, wins, 1)
	assert.Equal(t, "after midnight", wins[0].Title)
}

func TestTimeSpentTodayIsNotARollingWindow(t *testing.T) {
	clk := &fakeClock{now: time.Date(2026, time.October, 16, 0, 30, 0, 0, time.UTC)}
	svc := newService(t, db.NewMemoryStore(), clk)

	svc.AddMicroWin(models.MicroWin{Title: "late last night", Duration: 60,
		CompletedAt: time.Date(2026, time.October, 15, 23, 45, 0, 0, time.UTC)})

	assert.Equal(t, 0, svc.TimeSpentToday().Sessions)
}

func TestWeeklyStatsWindowIsInclusive(t *testing.T) {
	clk := &fakeClock{now: base}
	svc := newService(t, db.NewMemoryStore(), clk)
	weekAgo := base.AddDate(0, 0, -7)

	svc.AddMicroWin(models.MicroWin{ID: "old", Duration: 999, CompletedAt: weekAgo.Add(-time.Second)})
	svc.AddMicroWin(models.MicroWin{ID: "edge", Duration: 60, CompletedAt: weekAgo})
	svc.AddMicroWin(models.MicroWin{ID: "mid", Duration: 300, CompletedAt: base.AddDate(0, 0, -3)})
	svc.AddMicroWin(models.MicroWin{ID: "now", Duration: 3600, CompletedAt: base})

	stats := svc.WeeklyStats()
	assert.Equal(t, 3, stats.TotalWins)
	assert.Equal(t, 3960, stats.TotalTime)
	assert.Equal(t, 0, stats.AverageDaily) // round(3/7)
}

func TestWeeklyStatsAverageDividesBySeven(t *testing.T) {
	tests := []struct {
		wins int
		want int
	}{
		{0, 0},
		{3, 0},
		{4, 1},  // 0.57
		{10, 1}, // 1.43
		{11, 2}, // 1.57
		{14, 2},
	}

	for _, tt := range tests {
		clk := &fakeClock{now: base}
		svc := newService(t, db.NewMemoryStore(), clk)
		for i := 0; i < tt.wins; i++ {
			svc.AddMicroWin(models.MicroWin{Duration: 60, CompletedAt: base.Add(-time.Duration(i) * time.Hour)})
		}
		assert.Equal(t, tt.want, svc.WeeklyStats().AverageDaily, "wins=%d", tt.wins)
	}
}

func TestStreak(t *testing.T) {
	clk := &fakeClock{now: base}
	svc := newService(t, db.NewMemoryStore(), clk)

	assert.Equal(t, 0, svc.Streak())

	svc.AddMicroWin(models.MicroWin{CompletedAt: base.AddDate(0, 0, -4)})
	svc.AddMicroWin(models.MicroWin{CompletedAt: base.AddDate(0, 0, -2)})
	svc.AddMicroWin(models.MicroWin{CompletedAt: base.AddDate(0, 0, -1)})
	assert.Equal(t, 0, svc.Streak(), "no win today")

	svc.AddMicroWin(models.MicroWin{CompletedAt: base})
	svc.AddMicroWin(models.MicroWin{CompletedAt: base.Add(time.Hour)})
	assert.Equal(t, 3, svc.Streak())
}
