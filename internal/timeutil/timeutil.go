package timeutil

import (
	"regexp"
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// naiveLayout matches ISO timestamps that carry no zone information.
const naiveLayout = "2006-01-02T15:04:05"

var (
	timeOnlyPattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
	dateOnlyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsDateOnly reports whether raw is a bare YYYY-MM-DD string.
func IsDateOnly(raw string) bool {
	return dateOnlyPattern.MatchString(strings.TrimSpace(raw))
}

// ParseInstant resolves the loosely formatted timestamps the upstream feed
// supplies into a UTC instant. Full ISO timestamps parse directly and are
// assumed to be in loc when zoneless; bare HH:MM:SS strings combine with the
// day date; bare dates resolve to local midnight. The second return is false
// when raw cannot be interpreted.
func ParseInstant(raw string, day *time.Time, loc *time.Location) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if strings.ContainsRune(s, 'T') {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t.UTC(), true
		}
		if t, err := time.ParseInLocation(naiveLayout, s, loc); err == nil {
			return t.UTC(), true
		}
		return time.Time{}, false
	}

	if timeOnlyPattern.MatchString(s) {
		if day == nil {
			return time.Time{}, false
		}
		t, err := time.ParseInLocation(DateLayout+"T"+"15:04:05", day.Format(DateLayout)+"T"+s, loc)
		if err != nil {
			return time.Time{}, false
		}
		return t.UTC(), true
	}

	if dateOnlyPattern.MatchString(s) {
		t, err := time.ParseInLocation(DateLayout, s, loc)
		if err != nil {
			return time.Time{}, false
		}
		return t.UTC(), true
	}

	return time.Time{}, false
}

// SynthesizeEnd returns the effective end instant for a game. A missing end,
// or one not later than start, becomes start plus the explicit duration in
// minutes when positive, else start plus one hour.
func SynthesizeEnd(start time.Time, end *time.Time, durationMinutes int) time.Time {
	if end != nil && end.After(start) {
		return *end
	}
	if durationMinutes > 0 {
		return start.Add(time.Duration(durationMinutes) * time.Minute)
	}
	return start.Add(time.Hour)
}
