package match

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultCompetition = "Liga"

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Match is an upcoming fixture of the club.
type Match struct {
	ID          int64
	Opponent    string
	Date        string
	Time        string
	Home        bool
	Competition string
	Venue       *string
	CreatedAt   time.Time
}

// Normalize trims text fields, applies the default competition, clears a blank
// venue and rewrites Date/Time to DateLayout/TimeLayout.
func (m *Match) Normalize() error {
	m.Opponent = strings.TrimSpace(m.Opponent)
	m.Competition = strings.TrimSpace(m.Competition)
	if m.Competition == "" {
		m.Competition = DefaultCompetition
	}
	m.Venue = NormalizeVenue(m.Venue)

	date, err := NormalizeDate(m.Date)
	if err != nil {
		return err
	}
	m.Date = date

	clock, err := NormalizeTime(m.Time)
	if err != nil {
		return err
	}
	m.Time = clock
	return nil
}

// StartsAt combines Date and Time in loc.
func (m Match) StartsAt(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout+" "+TimeLayout, m.Date+" "+m.Time, loc)
}

// NormalizeDate accepts YYYY-MM-DD, optionally followed by a time part as sent by
// date pickers, and returns YYYY-MM-DD.
func NormalizeDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) > len(DateLayout) && (raw[len(DateLayout)] == 'T' || raw[len(DateLayout)] == ' ') {
		raw = raw[:len(DateLayout)]
	}
	parsed, err := time.Parse(DateLayout, raw)
	if err != nil {
		return "", fmt.Errorf("fecha must use YYYY-MM-DD: %q", raw)
	}
	return parsed.Format(DateLayout), nil
}

// NormalizeTime accepts HH:MM or HH:MM:SS and returns HH:MM.
func NormalizeTime(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{TimeLayout, "15:04:05"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.Format(TimeLayout), nil
		}
	}
	return "", fmt.Errorf("hora must use HH:MM: %q", raw)
}

// NormalizeVenue returns nil for an absent or blank venue.
func NormalizeVenue(venue *string) *string {
	if venue == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*venue)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
