package ics

import (
	"strings"
	"testing"
	"time"
)

func TestCalendarEnvelope(t *testing.T) {
	cal := NewCalendar("BTSH Alpha (2025)", "America/New_York")
	out := string(cal.Bytes())

	for _, want := range []string{
		"BEGIN:VCALENDAR\r\n",
		"VERSION:2.0\r\n",
		"PRODID:-//btsh-ics//EN\r\n",
		"CALSCALE:GREGORIAN\r\n",
		"METHOD:PUBLISH\r\n",
		"X-WR-CALNAME:BTSH Alpha (2025)\r\n",
		"X-WR-TIMEZONE:America/New_York\r\n",
		"END:VCALENDAR\r\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "END:VCALENDAR\r\n") {
		t.Fatal("expected trailing CRLF after END:VCALENDAR")
	}
}

func TestCalendarOmitsEmptyTimezone(t *testing.T) {
	cal := NewCalendar("name", "")
	if strings.Contains(string(cal.Bytes()), "X-WR-TIMEZONE") {
		t.Fatal("expected no timezone property")
	}
}

func TestAddEventEmitsTimedVEVENT(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	start := time.Date(2025, 4, 6, 13, 0, 0, 0, loc)
	stamp := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	cal := NewCalendar("cal", "America/New_York")
	cal.AddEvent(Event{
		UID:         "btsh-game-101",
		Summary:     "Alpha vs Beta",
		Start:       start,
		End:         start.Add(time.Hour),
		TZID:        "America/New_York",
		Location:    "Tompkins Square Park",
		URL:         "https://btsh.org",
		Description: "line one\nline two",
		Stamp:       stamp,
	})
	out := string(cal.Bytes())

	for _, want := range []string{
		"BEGIN:VEVENT\r\n",
		"UID:btsh-game-101\r\n",
		"DTSTAMP:20250401T120000Z\r\n",
		"SUMMARY:Alpha vs Beta\r\n",
		"DTSTART;TZID=America/New_York:20250406T130000\r\n",
		"DTEND;TZID=America/New_York:20250406T140000\r\n",
		"LOCATION:Tompkins Square Park\r\n",
		"URL:https://btsh.org\r\n",
		`DESCRIPTION:line one\nline two` + "\r\n",
		"END:VEVENT\r\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestAddEventDefaultsEndToOneHour(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	start := time.Date(2025, 4, 6, 13, 0, 0, 0, loc)

	cal := NewCalendar("cal", "America/New_York")
	cal.AddEvent(Event{UID: "u", Start: start, TZID: "America/New_York"})

	if !strings.Contains(string(cal.Bytes()), "DTEND;TZID=America/New_York:20250406T140000") {
		t.Fatal("expected synthesized DTEND")
	}
}

func TestAddAllDayEvent(t *testing.T) {
	day := time.Date(2025, 4, 13, 0, 0, 0, 0, time.UTC)

	cal := NewCalendar("cal", "")
	cal.AddAllDayEvent(AllDayEvent{UID: "btsh-league-day-20250413", Summary: "[BTSH] Easter", Day: day})
	out := string(cal.Bytes())

	if !strings.Contains(out, "DTSTART;VALUE=DATE:20250413\r\n") {
		t.Fatalf("missing date start in:\n%s", out)
	}
	if !strings.Contains(out, "DTEND;VALUE=DATE:20250414\r\n") {
		t.Fatalf("missing next-day date end in:\n%s", out)
	}
}

func TestLongLinesAreFolded(t *testing.T) {
	cal := NewCalendar("cal", "")
	cal.AddAllDayEvent(AllDayEvent{
		UID:         "u",
		Summary:     strings.Repeat("long summary ", 20),
		Day:         time.Date(2025, 4, 13, 0, 0, 0, 0, time.UTC),
		Description: strings.Repeat("d", 200),
	})

	for _, line := range strings.Split(string(cal.Bytes()), "\r\n") {
		if len(line) > FoldLimit {
			t.Fatalf("unfolded physical line of length %d: %q", len(line), line)
		}
	}
}
