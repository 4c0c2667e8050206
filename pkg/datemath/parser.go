package datemath

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date wire format produced by extraction.
const DateLayout = "2006-01-02"

// LabelLayout renders a full human-readable date, e.g. "Sunday, February 1, 2026".
const LabelLayout = "Monday, January 2, 2006"

// Parser normalizes calendar dates within a fixed IANA timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a date parser for the given IANA timezone string,
// e.g. "America/New_York". An empty string means UTC.
func NewParser(timezone string) (*Parser, error) {
	if timezone == "" {
		return &Parser{location: time.UTC}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseDate converts a "YYYY-MM-DD" string to midnight of that day in the
// parser's timezone. Anything that does not match the layout is an error.
func (p *Parser) ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// Label returns a human-friendly label for date relative to now:
// "today", "tomorrow", or the full weekday/month/day/year string.
// Both instants are normalized to midnight before comparing, so the
// label only depends on the calendar day.
func (p *Parser) Label(date, now time.Time) string {
	day := p.StartOfDay(date)
	today := p.StartOfDay(now)

	switch {
	case day.Equal(today):
		return "today"
	case day.Equal(today.AddDate(0, 0, 1)):
		return "tomorrow"
	default:
		return day.Format(LabelLayout)
	}
}
