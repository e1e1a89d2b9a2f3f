package models

import "time"

// TimeSession is an interval of active time. EndTime is only set once the
// session has been stopped; Duration stays 0 while it is open.
type TimeSession struct {
	ID        string     `json:"id"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Duration  int        `json:"duration"` // seconds
}

// IsOpen reports whether the session has not been stopped yet
func (s TimeSession) IsOpen() bool {
	return s.EndTime == nil
}

// Elapsed returns the time since the session started, or its final duration once stopped
func (s TimeSession) Elapsed(now time.Time) time.Duration {
	if s.EndTime != nil {
		return time.Duration(s.Duration) * time.Second
	}
	if now.Before(s.StartTime) {
		return 0
	}
	return now.Sub(s.StartTime)
}

// TimeData is the running aggregate of completed sessions
type TimeData struct {
	TotalActiveTime int        `json:"totalActiveTime"` // seconds
	Sessions        int        `json:"sessions"`
	LastActive      *time.Time `json:"lastActive"`
}

// WeeklyStats summarises micro-wins over the last seven days
type WeeklyStats struct {
	TotalWins    int `json:"totalWins"`
	TotalTime    int `json:"totalTime"` // seconds
	AverageDaily int `json:"averageDaily"`
}
