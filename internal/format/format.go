// Package format renders durations, times and greetings for display.
package format

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dustin/go-humanize"
)

// Duration formats whole seconds: 45s, 5m, 5m 30s, 1h, 1h 5m
func Duration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	remainingSeconds := seconds % 60
	if minutes < 60 {
		if remainingSeconds > 0 {
			return fmt.Sprintf("%dm %ds", minutes, remainingSeconds)
		}
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	remainingMinutes := minutes % 60
	if remainingMinutes > 0 {
		return fmt.Sprintf("%dh %dm", hours, remainingMinutes)
	}
	return fmt.Sprintf("%dh", hours)
}

// Ago describes t relative to now ("3 minutes ago")
func Ago(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

// TimeOfDay buckets the hour of t
func TimeOfDay(t time.Time) string {
	hour := t.Hour()
	switch {
	case hour >= 5 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 17:
		return "afternoon"
	case hour >= 17 && hour < 21:
		return "evening"
	default:
		return "night"
	}
}

var greetings = map[string][]string{
	"morning":   {"Rise and shine!", "Good morning, champion!", "Start strong today!"},
	"afternoon": {"Keep the momentum!", "Afternoon power hour!", "Stay focused!"},
	"evening":   {"Evening excellence!", "Finish strong!", "End on a high note!"},
	"night":     {"Night owl mode!", "Late night productivity!", "Burning the midnight oil!"},
}

// Greeting picks a greeting for the time of day; r may be nil
func Greeting(t time.Time, r *rand.Rand) string {
	options := greetings[TimeOfDay(t)]
	if r == nil {
		return options[rand.IntN(len(options))]
	}
	return options[r.IntN(len(options))]
}
