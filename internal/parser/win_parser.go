package parser

import (
	"regexp"
	"strings"
)

// ParsedWin represents a micro-win parsed from quick-entry text
type ParsedWin struct {
	Title    string
	Category string
	Duration int // seconds, 0 when not given
	Errors   []string
}

var (
	categoryRegex     = regexp.MustCompile(`#([\p{L}0-9_-]+)`)
	trailingUnitRegex = regexp.MustCompile(`(?i)\s(\d+\s+(?:sec|secs|second|seconds|min|mins|minute|minutes|hr|hrs|hour|hours))$`)
)

// ParseWin extracts metadata from a micro-win description
// Syntax: "Read an article #Learning 5m" or "Stretch #Health 2 minutes"
func ParseWin(input string) ParsedWin {
	result := ParsedWin{
		Title:  input,
		Errors: []string{},
	}

	// Extract category (#Category); the first one wins
	if matches := categoryRegex.FindStringSubmatch(input); len(matches) > 1 {
		result.Category = matches[1]
		input = categoryRegex.ReplaceAllString(input, "")
	}

	// Duration written with a separate unit word ("2 minutes")
	input = strings.TrimSpace(input)
	if matches := trailingUnitRegex.FindStringSubmatch(input); len(matches) > 1 {
		if seconds, err := ParseDuration(matches[1]); err == nil {
			result.Duration = seconds
			input = strings.TrimSuffix(input, matches[0])
		} else {
			result.Errors = append(result.Errors, "Invalid duration '"+matches[1]+"': "+err.Error())
		}
	} else if fields := strings.Fields(input); len(fields) > 1 {
		// Single-token duration at the end ("5m", "1h30m"); a lone word is always the title
		last := fields[len(fields)-1]
		if looksLikeDuration(last) {
			// Tokens like "5pm" that fail to parse stay in the title
			if seconds, err := ParseDuration(last); err == nil {
				result.Duration = seconds
				input = strings.Join(fields[:len(fields)-1], " ")
			}
		}
	}

	// Clean up the title (remove extra spaces)
	result.Title = strings.Join(strings.Fields(input), " ")

	if result.Title == "" {
		result.Errors = append(result.Errors, "Title is required")
	}

	return result
}

// looksLikeDuration is true for tokens such as 5m, 90s, 1h30m
func looksLikeDuration(token string) bool {
	token = strings.ToLower(token)
	if token == "" || token[0] < '0' || token[0] > '9' {
		return false
	}
	last := token[len(token)-1]
	return last == 's' || last == 'm' || last == 'h'
}
