package models

import "time"

// MicroWin is a completed timed activity. Wins are immutable once recorded.
type MicroWin struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Duration    int       `json:"duration"` // seconds
	CompletedAt time.Time `json:"completedAt"`
	Category    string    `json:"category"`
}

// Challenge is a catalog entry the challenge runner counts down
type Challenge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Duration    int    `json:"duration"` // seconds
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Win builds the micro-win reported when the challenge countdown reaches zero.
// Duration is the nominal challenge length, not wall-clock time.
func (c Challenge) Win(completedAt time.Time) MicroWin {
	return MicroWin{
		Title:       c.Title,
		Duration:    c.Duration,
		CompletedAt: completedAt,
		Category:    c.Category,
	}
}

// ImpactItem is one example of what a second, a minute or an hour can achieve
type ImpactItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Value       string `json:"value"`
	Impact      string `json:"impact"`
	Category    string `json:"category"`
	Color       string `json:"color"`
}
