package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const maxDurationSeconds = 24 * 60 * 60

var (
	secondsRegex  = regexp.MustCompile(`^(\d+)$`)
	relativeRegex = regexp.MustCompile(`^(\d+)\s*(s|sec|secs|second|seconds|m|min|mins|minute|minutes|h|hr|hrs|hour|hours)$`)
)

// ParseDuration parses a timed-activity length into whole seconds
// Supported formats:
// - plain seconds (e.g., "90")
// - Go durations (e.g., "5m", "1h30m", "90s")
// - X unit (e.g., "5 minutes", "1 hour", "30 sec")
func ParseDuration(input string) (int, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return 0, fmt.Errorf("duration is empty")
	}

	seconds, err := parseDurationSeconds(input)
	if err != nil {
		return 0, err
	}

	if seconds < 1 || seconds > maxDurationSeconds {
		return 0, fmt.Errorf("duration must be between 1 second and 24 hours")
	}
	return seconds, nil
}

func parseDurationSeconds(input string) (int, error) {
	// Plain number of seconds
	if secondsRegex.MatchString(input) {
		return strconv.Atoi(input)
	}

	// Go duration syntax
	if d, err := time.ParseDuration(input); err == nil {
		return int(d / time.Second), nil
	}

	// "X unit" or "X units"
	matches := relativeRegex.FindStringSubmatch(input)
	if len(matches) != 3 {
		return 0, fmt.Errorf("invalid duration format. Use: 90, 5m, 1h30m, 5 minutes, or 1 hour")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("invalid number")
	}

	switch matches[2] {
	case "s", "sec", "secs", "second", "seconds":
		return amount, nil
	case "m", "min", "mins", "minute", "minutes":
		return amount * 60, nil
	default:
		return amount * 3600, nil
	}
}

// IsDuration reports whether input parses as a duration
func IsDuration(input string) bool {
	_, err := ParseDuration(input)
	return err == nil
}
