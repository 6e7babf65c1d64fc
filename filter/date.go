// Package filter implements date comparison predicates for schedule checks:
// given a candidate date string, it reports how "today" relates to it under
// one of the six comparison operators.
package filter

import (
	"fmt"
	"regexp"
	"time"
)

// Accepted candidate layouts. Date-only candidates compare at calendar-day
// granularity, the datetime variants at whole seconds.
const (
	layoutDate          = "2006-01-02"
	layoutDateTime      = "2006-01-02T15:04:05"
	layoutDateTimeSpace = "2006-01-02 15:04:05"
)

var (
	dateRe     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateTimeRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}$`)
)

// ParseError reports a candidate string that does not match an accepted
// layout or does not denote a real calendar date (month 13, Feb 30).
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse date %q: want YYYY-MM-DD, optionally followed by THH:MM:SS or \" HH:MM:SS\"", e.Input)
}

// Candidate is a parsed candidate date plus its granularity.
type Candidate struct {
	Time     time.Time
	WithTime bool
}

// ParseCandidate parses a candidate date string in loc.
// A nil loc falls back to the local time zone.
func ParseCandidate(s string, loc *time.Location) (Candidate, error) {
	if loc == nil {
		loc = time.Local
	}

	switch {
	case dateRe.MatchString(s):
		t, err := time.ParseInLocation(layoutDate, s, loc)
		if err != nil {
			return Candidate{}, &ParseError{Input: s}
		}
		return Candidate{Time: t}, nil

	case dateTimeRe.MatchString(s):
		layout := layoutDateTime
		if s[10] == ' ' {
			layout = layoutDateTimeSpace
		}
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			return Candidate{}, &ParseError{Input: s}
		}
		return Candidate{Time: t, WithTime: true}, nil
	}

	return Candidate{}, &ParseError{Input: s}
}
