package testutil

import (
	"time"

	"btsh-ics-generator/internal/domain"
)

// IntPtr returns a pointer to v; handy for optional score fields.
func IntPtr(v int) *int { return &v }

// TimePtr returns a pointer to t.
func TimePtr(t time.Time) *time.Time { return &t }

// SampleGame returns a scheduled game fixture between the named teams.
func SampleGame(id, home, away, start string) domain.Game {
	g := domain.Game{
		ID:     id,
		Status: "scheduled",
		Home:   domain.Participant{Name: home},
		Away:   domain.Participant{Name: away},
	}
	if start != "" {
		t := MustParseRFC3339(start)
		g.Start = &t
		end := t.Add(time.Hour)
		g.End = &end
	}
	return g
}

// CompletedGame returns a final game fixture with the given score.
func CompletedGame(id, home, away, start string, homeScore, awayScore int) domain.Game {
	g := SampleGame(id, home, away, start)
	g.Status = "completed"
	g.HomeScore = IntPtr(homeScore)
	g.AwayScore = IntPtr(awayScore)
	return g
}

// SampleTeam returns a registration fixture.
func SampleTeam(id int, name, division string) domain.Team {
	return domain.Team{ID: id, Name: name, Division: division}
}
