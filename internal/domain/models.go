package domain

import (
	"sort"
	"strings"
	"time"
)

// Participant identifies one side of a game. Upstream supplies either a full
// team object, a bare numeric id, or a bare name string; ID is nil when only
// a name is known.
type Participant struct {
	ID   *int
	Name string
}

// Team is one season registration record.
type Team struct {
	ID           int
	Name         string
	Division     string
	DivisionCode string
}

// Season is one record from the seasons endpoint. StartDate stays a raw
// YYYY-MM-DD string because it is only compared, never computed with.
type Season struct {
	ID        int
	Year      int
	Current   bool
	StartDate string
}

// LeagueDay is a league-wide calendar date that carries no games, e.g. a
// holiday or make-up slot marker.
type LeagueDay struct {
	Day   time.Time // local midnight
	Type  string
	Title string
	Note  string
}

// Game is one scheduled or completed contest, or a placeholder slot when the
// participants are not yet known. Instances are built once by the normalizer
// and never mutated afterwards.
type Game struct {
	ID    string
	Start *time.Time // UTC; nil for dateless entries
	End   *time.Time // UTC

	// Status preserves the raw upstream text; Cancelled and Placeholder are
	// derived during normalization and take precedence for rendering.
	Status      string
	Cancelled   bool
	Placeholder bool

	Home Participant
	Away Participant

	HomeScore *int
	AwayScore *int

	WentOT bool
	WentSO bool

	Venue string
	Note  string
}

// DefaultPlaceholderNames lists the sentinel participant names that mark an
// undetermined slot.
var DefaultPlaceholderNames = []string{"-", "TBD", "TBA"}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IsPlaceholderName reports whether a participant name marks an undetermined
// slot: blank, a known sentinel, or anything containing "tbd".
func IsPlaceholderName(name string, sentinels []string) bool {
	n := normalizeName(name)
	if n == "" {
		return true
	}
	for _, s := range sentinels {
		if n == strings.ToLower(s) {
			return true
		}
	}
	return strings.Contains(n, "tbd")
}

// IsCancelledStatus reports whether raw status text means cancelled,
// tolerating both spellings.
func IsCancelledStatus(status string) bool {
	switch normalizeName(status) {
	case "cancelled", "canceled":
		return true
	}
	return false
}

// ScorePosted reports whether both scores are present.
func (g Game) ScorePosted() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}

// Completed reports whether the game reached a final result.
func (g Game) Completed() bool {
	switch normalizeName(g.Status) {
	case "completed", "final":
		return true
	}
	return false
}

// DisplayStatus returns the status text used for rendering; the derived
// cancelled flag wins over the raw status.
func (g Game) DisplayStatus() string {
	if g.Cancelled {
		return "cancelled"
	}
	s := normalizeName(g.Status)
	if s == "" {
		return "scheduled"
	}
	return s
}

// InvolvesTeam reports whether the named team plays in this game.
func (g Game) InvolvesTeam(name string) bool {
	n := normalizeName(name)
	return normalizeName(g.Home.Name) == n || normalizeName(g.Away.Name) == n
}

// IsHomeTeam reports whether the named team hosts this game.
func (g Game) IsHomeTeam(name string) bool {
	return normalizeName(g.Home.Name) == normalizeName(name)
}

// Opponent returns the other participant's name from the named team's
// perspective.
func (g Game) Opponent(name string) string {
	if g.IsHomeTeam(name) {
		return g.Away.Name
	}
	return g.Home.Name
}

// SortGames orders games by start ascending with dateless games after all
// dated ones, breaking ties by id so output order is deterministic.
func SortGames(games []Game) {
	sort.SliceStable(games, func(i, j int) bool {
		gi, gj := games[i], games[j]
		switch {
		case gi.Start == nil && gj.Start == nil:
			return gi.ID < gj.ID
		case gi.Start == nil:
			return false
		case gj.Start == nil:
			return true
		}
		if gi.Start.Equal(*gj.Start) {
			return gi.ID < gj.ID
		}
		return gi.Start.Before(*gj.Start)
	})
}
