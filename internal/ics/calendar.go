package ics

import (
	"strings"
	"time"
)

// ProdID identifies this generator in emitted calendars.
const ProdID = "-//btsh-ics//EN"

const (
	localStampLayout = "20060102T150405"
	utcStampLayout   = "20060102T150405Z"
	dateStampLayout  = "20060102"
)

// Event is one timed calendar entry. Start and End are wall-clock times in
// the calendar's timezone; Stamp is the UTC generation timestamp.
type Event struct {
	UID         string
	Summary     string
	Start       time.Time
	End         time.Time
	TZID        string
	Location    string
	URL         string
	Description string
	Stamp       time.Time
}

// AllDayEvent is a date-only calendar entry spanning exactly one day.
type AllDayEvent struct {
	UID         string
	Summary     string
	Day         time.Time
	Description string
	Stamp       time.Time
}

// Calendar accumulates folded content lines for one VCALENDAR document.
type Calendar struct {
	lines []string
	limit int
}

// NewCalendar starts a calendar document with the standard envelope. tzid may
// be empty.
func NewCalendar(name, tzid string) *Calendar {
	c := &Calendar{limit: FoldLimit}
	c.addLine("BEGIN:VCALENDAR")
	c.addLine("VERSION:2.0")
	c.addLine("PRODID:" + ProdID)
	c.addLine("CALSCALE:GREGORIAN")
	c.addLine("METHOD:PUBLISH")
	c.addLine("X-WR-CALNAME:" + Escape(name))
	if tzid != "" {
		c.addLine("X-WR-TIMEZONE:" + tzid)
	}
	return c
}

// AddEvent appends a timed VEVENT. A zero End falls back to Start plus one
// hour so every emitted event carries a DTEND.
func (c *Calendar) AddEvent(ev Event) {
	end := ev.End
	if end.IsZero() {
		end = ev.Start.Add(time.Hour)
	}

	c.addLine("BEGIN:VEVENT")
	c.addLine("UID:" + ev.UID)
	c.addLine("DTSTAMP:" + ev.Stamp.UTC().Format(utcStampLayout))
	c.addLine("SUMMARY:" + Escape(ev.Summary))
	c.addLine("DTSTART;TZID=" + ev.TZID + ":" + ev.Start.Format(localStampLayout))
	c.addLine("DTEND;TZID=" + ev.TZID + ":" + end.Format(localStampLayout))
	if ev.Location != "" {
		c.addLine("LOCATION:" + Escape(ev.Location))
	}
	if ev.URL != "" {
		c.addLine("URL:" + Escape(ev.URL))
	}
	c.addLine("DESCRIPTION:" + Escape(ev.Description))
	c.addLine("END:VEVENT")
}

// AddAllDayEvent appends a date-only VEVENT whose DTEND is the following day.
func (c *Calendar) AddAllDayEvent(ev AllDayEvent) {
	c.addLine("BEGIN:VEVENT")
	c.addLine("UID:" + ev.UID)
	c.addLine("DTSTAMP:" + ev.Stamp.UTC().Format(utcStampLayout))
	c.addLine("SUMMARY:" + Escape(ev.Summary))
	c.addLine("DTSTART;VALUE=DATE:" + ev.Day.Format(dateStampLayout))
	c.addLine("DTEND;VALUE=DATE:" + ev.Day.AddDate(0, 0, 1).Format(dateStampLayout))
	c.addLine("DESCRIPTION:" + Escape(ev.Description))
	c.addLine("END:VEVENT")
}

// Bytes closes the document and renders it with CRLF line endings, trailing
// CRLF included, for maximum client compatibility.
func (c *Calendar) Bytes() []byte {
	lines := make([]string, len(c.lines), len(c.lines)+1)
	copy(lines, c.lines)
	lines = append(lines, "END:VCALENDAR")
	return []byte(strings.Join(lines, "\r\n") + "\r\n")
}

func (c *Calendar) addLine(line string) {
	c.lines = append(c.lines, FoldLine(line, c.limit)...)
}
