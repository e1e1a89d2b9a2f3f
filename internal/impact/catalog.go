// Package impact holds the built-in examples of what small amounts of time can achieve.
package impact

import (
	"fmt"
	"slices"
	"strings"

	"github.com/balkashynov/timevate/internal/models"
)

// Timeframe is one of the amounts of time the catalog is grouped by
type Timeframe string

const (
	Second Timeframe = "second"
	Minute Timeframe = "minute"
	Hour   Timeframe = "hour"
)

// Timeframes returns every timeframe in display order
func Timeframes() []Timeframe {
	return []Timeframe{Second, Minute, Hour}
}

// Label is the heading shown for the timeframe
func (t Timeframe) Label() string {
	switch t {
	case Second:
		return "1 Second"
	case Minute:
		return "1 Minute"
	case Hour:
		return "1 Hour"
	default:
		return string(t)
	}
}

// ParseTimeframe accepts second/minute/hour, their plurals and s/m/h
func ParseTimeframe(input string) (Timeframe, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "s", "sec", "second", "seconds", "1s":
		return Second, nil
	case "m", "min", "minute", "minutes", "1m":
		return Minute, nil
	case "h", "hr", "hour", "hours", "1h":
		return Hour, nil
	default:
		return "", fmt.Errorf("unknown timeframe %q (use second, minute or hour)", input)
	}
}

var catalog = map[Timeframe][]models.ImpactItem{
	Second: {
		{Title: "Take a Deep Breath", Description: "Inhale oxygen, exhale stress. Reset your nervous system instantly.",
			Value: "1 breath", Impact: "Instant calm", Category: "health", Color: "#2ECC71"},
		{Title: "Smile", Description: "Activate 17 muscles and trigger endorphin release in your brain.",
			Value: "17 muscles", Impact: "Mood boost", Category: "health", Color: "#F39C12"},
		{Title: "Think Grateful", Description: "Acknowledge one thing you're grateful for right now.",
			Value: "1 thought", Impact: "Perspective shift", Category: "learning", Color: "#9B59B6"},
		{Title: "Blink Mindfully", Description: "Give your eyes a micro-rest and be present in the moment.",
			Value: "Eye relief", Impact: "Mindfulness", Category: "health", Color: "#3498DB"},
	},
	Minute: {
		{Title: "Power Plank", Description: "Strengthen your core and build mental resilience simultaneously.",
			Value: "Core strength", Impact: "Physical + Mental", Category: "exercise", Color: "#E74C3C"},
		{Title: "Read 200 Words", Description: "Absorb new knowledge from an article, book, or educational content.",
			Value: "200 words", Impact: "Knowledge gain", Category: "reading", Color: "#3498DB"},
		{Title: "Write Down 3 Goals", Description: "Clarify your intentions and create a roadmap for success.",
			Value: "3 goals", Impact: "Clarity boost", Category: "productivity", Color: "#2ECC71"},
		{Title: "Organize Your Space", Description: "Clear your desk or immediate area to boost productivity.",
			Value: "Clean space", Impact: "Focus ready", Category: "productivity", Color: "#F39C12"},
		{Title: "Connect With Someone", Description: "Send a meaningful message to strengthen relationships.",
			Value: "1 connection", Impact: "Relationship boost", Category: "productivity", Color: "#9B59B6"},
	},
	Hour: {
		{Title: "Master a New Skill", Description: "Make significant progress in learning something valuable.",
			Value: "Skill level up", Impact: "Long-term growth", Category: "learning", Color: "#3498DB"},
		{Title: "Complete a Project", Description: "Finish a meaningful task that moves you toward your goals.",
			Value: "1 project done", Impact: "Achievement unlocked", Category: "productivity", Color: "#2ECC71"},
		{Title: "Full Workout", Description: "Transform your energy, strength, and mental clarity.",
			Value: "Body transformation", Impact: "Peak performance", Category: "exercise", Color: "#E74C3C"},
		{Title: "Deep Learning", Description: "Absorb substantial knowledge through focused study or research.",
			Value: "3000+ words", Impact: "Expertise building", Category: "reading", Color: "#9B59B6"},
		{Title: "Creative Breakthrough", Description: "Make significant progress on a creative project or idea.",
			Value: "Creative output", Impact: "Innovation spark", Category: "productivity", Color: "#F39C12"},
		{Title: "Plan Your Future", Description: "Set strategic goals and create actionable plans for success.",
			Value: "Future mapped", Impact: "Life direction", Category: "productivity", Color: "#34495E"},
	},
}

// All returns every item, seconds first, then minutes, then hours
func All() []models.ImpactItem {
	var out []models.ImpactItem
	for _, tf := range Timeframes() {
		out = append(out, catalog[tf]...)
	}
	return out
}

// ByTimeframe returns the items of one timeframe; unknown timeframes have none
func ByTimeframe(tf Timeframe) []models.ImpactItem {
	return slices.Clone(catalog[tf])
}
