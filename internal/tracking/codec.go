package tracking

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/balkashynov/timevate/internal/models"
)

// Records mirror the models with timestamps as RFC 3339 text, so a bad
// timestamp can be dropped without failing the whole value.

type timeDataRecord struct {
	TotalActiveTime int     `json:"totalActiveTime"`
	Sessions        int     `json:"sessions"`
	LastActive      *string `json:"lastActive"`
}

type microWinRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Duration    int    `json:"duration"`
	CompletedAt string `json:"completedAt"`
	Category    string `json:"category"`
}

type sessionRecord struct {
	ID        string  `json:"id"`
	StartTime string  `json:"startTime"`
	EndTime   *string `json:"endTime,omitempty"`
	Duration  int     `json:"duration"`
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// parseTime also accepts the millisecond ISO form (2006-01-02T15:04:05.000Z).
func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func encodeTimeData(d models.TimeData) (string, error) {
	rec := timeDataRecord{
		TotalActiveTime: d.TotalActiveTime,
		Sessions:        d.Sessions,
	}
	if d.LastActive != nil {
		s := formatTime(*d.LastActive)
		rec.LastActive = &s
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("encode time data: %w", err)
	}
	return string(b), nil
}

func encodeMicroWins(wins []models.MicroWin) (string, error) {
	recs := make([]microWinRecord, 0, len(wins))
	for _, w := range wins {
		recs = append(recs, microWinRecord{
			ID:          w.ID,
			Title:       w.Title,
			Duration:    w.Duration,
			CompletedAt: formatTime(w.CompletedAt),
			Category:    w.Category,
		})
	}
	b, err := json.Marshal(recs)
	if err != nil {
		return "", fmt.Errorf("encode micro-wins: %w", err)
	}
	return string(b), nil
}

// encodeSession writes JSON null when no session is open.
func encodeSession(s *models.TimeSession) (string, error) {
	if s == nil {
		return "null", nil
	}
	rec := sessionRecord{
		ID:        s.ID,
		StartTime: formatTime(s.StartTime),
		Duration:  s.Duration,
	}
	if s.EndTime != nil {
		e := formatTime(*s.EndTime)
		rec.EndTime = &e
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("encode session: %w", err)
	}
	return string(b), nil
}

// decodeTimeData keeps the counters when only lastActive is malformed.
func decodeTimeData(raw string) (models.TimeData, []error) {
	var rec timeDataRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return models.TimeData{}, []error{fmt.Errorf("decode time data: %w", err)}
	}

	d := models.TimeData{
		TotalActiveTime: max(rec.TotalActiveTime, 0),
		Sessions:        max(rec.Sessions, 0),
	}
	var problems []error
	if rec.LastActive != nil {
		t, err := parseTime(*rec.LastActive)
		if err != nil {
			problems = append(problems, fmt.Errorf("decode lastActive: %w", err))
		} else {
			d.LastActive = &t
		}
	}
	return d, problems
}

// decodeMicroWins decodes each record on its own; broken records are skipped.
func decodeMicroWins(raw string) ([]models.MicroWin, []error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, []error{fmt.Errorf("decode micro-wins: %w", err)}
	}

	var problems []error
	wins := make([]models.MicroWin, 0, len(items))
	for i, item := range items {
		var rec microWinRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			problems = append(problems, fmt.Errorf("decode micro-win %d: %w", i, err))
			continue
		}
		completedAt, err := parseTime(rec.CompletedAt)
		if err != nil {
			problems = append(problems, fmt.Errorf("decode micro-win %q completedAt: %w", rec.ID, err))
			continue
		}
		wins = append(wins, models.MicroWin{
			ID:          rec.ID,
			Title:       rec.Title,
			Duration:    max(rec.Duration, 0),
			CompletedAt: completedAt,
			Category:    rec.Category,
		})
	}
	return wins, problems
}

// decodeSession returns nil for JSON null and for records without a usable startTime.
func decodeSession(raw string) (*models.TimeSession, []error) {
	var rec *sessionRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, []error{fmt.Errorf("decode session: %w", err)}
	}
	if rec == nil || rec.StartTime == "" {
		return nil, nil
	}

	start, err := parseTime(rec.StartTime)
	if err != nil {
		return nil, []error{fmt.Errorf("decode session startTime: %w", err)}
	}

	s := &models.TimeSession{
		ID:        rec.ID,
		StartTime: start,
		Duration:  max(rec.Duration, 0),
	}
	var problems []error
	if rec.EndTime != nil {
		end, err := parseTime(*rec.EndTime)
		if err != nil {
			problems = append(problems, fmt.Errorf("decode session endTime: %w", err))
		} else {
			s.EndTime = &end
		}
	}
	return s, problems
}
