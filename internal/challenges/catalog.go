// Package challenges holds the built-in micro-challenge catalog.
package challenges

import (
	"slices"
	"strings"

	"github.com/balkashynov/timevate/internal/models"
)

// Tiers the catalog is grouped by, in seconds
const (
	OneMinute   = 60
	FiveMinutes = 300
	OneHour     = 3600
)

var catalog = []models.Challenge{
	// 60-second challenges
	{ID: "1", Title: "Deep Breathing Reset", Duration: OneMinute, Category: "Mindfulness",
		Description: "Take 10 deep breaths to center yourself and boost focus"},
	{ID: "2", Title: "Desk Organization", Duration: OneMinute, Category: "Productivity",
		Description: "Clear and organize your workspace for better productivity"},
	{ID: "3", Title: "Gratitude Moment", Duration: OneMinute, Category: "Mindfulness",
		Description: "Think of 3 things you're grateful for today"},
	{ID: "4", Title: "Power Posture", Duration: OneMinute, Category: "Health",
		Description: "Stand tall, shoulders back, and feel confident"},
	{ID: "5", Title: "Quick Stretch", Duration: OneMinute, Category: "Health",
		Description: "Stretch your neck, shoulders, and back"},

	// 5-minute challenges
	{ID: "6", Title: "Learning Sprint", Duration: FiveMinutes, Category: "Learning",
		Description: "Read an article or watch an educational video"},
	{ID: "7", Title: "Quick Workout", Duration: FiveMinutes, Category: "Health",
		Description: "Do jumping jacks, push-ups, or bodyweight exercises"},
	{ID: "8", Title: "Meditation Break", Duration: FiveMinutes, Category: "Mindfulness",
		Description: "Practice mindfulness or guided meditation"},
	{ID: "9", Title: "Skill Practice", Duration: FiveMinutes, Category: "Learning",
		Description: "Practice a skill you want to improve"},
	{ID: "10", Title: "Creative Writing", Duration: FiveMinutes, Category: "Creativity",
		Description: "Write down your thoughts, ideas, or journal entry"},

	// 1-hour challenges
	{ID: "11", Title: "Deep Work Session", Duration: OneHour, Category: "Productivity",
		Description: "Focus on your most important task without distractions"},
	{ID: "12", Title: "Learning Hour", Duration: OneHour, Category: "Learning",
		Description: "Dedicate time to learning something new"},
	{ID: "13", Title: "Creative Project", Duration: OneHour, Category: "Creativity",
		Description: "Work on a personal creative project"},
	{ID: "14", Title: "Health & Fitness", Duration: OneHour, Category: "Health",
		Description: "Exercise, meal prep, or health-focused activities"},
	{ID: "15", Title: "Connection Time", Duration: OneHour, Category: "Social",
		Description: "Spend quality time with family, friends, or networking"},
}

// All returns the whole catalog in display order
func All() []models.Challenge {
	return slices.Clone(catalog)
}

// Find looks a challenge up by id
func Find(id string) (models.Challenge, bool) {
	id = strings.TrimSpace(id)
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return models.Challenge{}, false
}

// ByDuration returns the challenges of one tier
func ByDuration(seconds int) []models.Challenge {
	var out []models.Challenge
	for _, c := range catalog {
		if c.Duration == seconds {
			out = append(out, c)
		}
	}
	return out
}

// Categories lists the distinct categories, sorted
func Categories() []string {
	var cats []string
	for _, c := range catalog {
		if !slices.Contains(cats, c.Category) {
			cats = append(cats, c.Category)
		}
	}
	slices.Sort(cats)
	return cats
}
