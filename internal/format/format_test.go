package format

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{-3, "0s"},
		{0, "0s"},
		{45, "45s"},
		{60, "1m"},
		{330, "5m 30s"},
		{3600, "1h"},
		{3960, "1h 6m"},
		{7200 + 59, "2h"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Duration(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestAgo(t *testing.T) {
	now := time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "3 minutes ago", Ago(now.Add(-3*time.Minute), now))
	assert.Equal(t, "1 hour from now", Ago(now.Add(time.Hour), now))
}

func TestTimeOfDay(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2026, 1, 1, h, 0, 0, 0, time.UTC) }
	assert.Equal(t, "night", TimeOfDay(at(4)))
	assert.Equal(t, "morning", TimeOfDay(at(5)))
	assert.Equal(t, "afternoon", TimeOfDay(at(12)))
	assert.Equal(t, "evening", TimeOfDay(at(17)))
	assert.Equal(t, "night", TimeOfDay(at(21)))
}

func TestGreetingMatchesTimeOfDay(t *testing.T) {
	morning := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	r := rand.New(rand.NewPCG(1, 2))
	for range 10 {
		assert.Contains(t, greetings["morning"], Greeting(morning, r))
	}
	assert.Contains(t, greetings["morning"], Greeting(morning, nil))
}

func TestWordAtRotatesEverySecond(t *testing.T) {
	t0 := time.Unix(1_700_000_000, 0)
	seen := map[string]bool{}
	for i := range len(Words) {
		seen[WordAt(t0.Add(time.Duration(i)*time.Second))] = true
	}
	assert.Len(t, seen, len(Words))
	assert.Equal(t, WordAt(t0), WordAt(t0.Add(time.Duration(len(Words))*time.Second)))
}
