package domain

import (
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func TestIsPlaceholderName(t *testing.T) {
	sentinels := DefaultPlaceholderNames
	cases := map[string]bool{
		"":              true,
		"   ":           true,
		"-":             true,
		"TBD":           true,
		"tbd":           true,
		"TBA":           true,
		"TBD (Playoff)": true,
		"Gouging Anklebiters": false,
	}
	for name, want := range cases {
		if got := IsPlaceholderName(name, sentinels); got != want {
			t.Fatalf("name %q expected %v, got %v", name, want, got)
		}
	}
}

func TestIsPlaceholderNameCustomSentinels(t *testing.T) {
	if !IsPlaceholderName("TBC", []string{"TBC"}) {
		t.Fatal("expected custom sentinel to match")
	}
	if IsPlaceholderName("TBC", []string{"-"}) {
		t.Fatal("expected non-sentinel to pass")
	}
}

func TestIsCancelledStatus(t *testing.T) {
	for _, s := range []string{"cancelled", "Canceled", " CANCELLED "} {
		if !IsCancelledStatus(s) {
			t.Fatalf("expected %q to read as cancelled", s)
		}
	}
	if IsCancelledStatus("scheduled") || IsCancelledStatus("") {
		t.Fatal("expected non-cancelled statuses to pass")
	}
}

func TestScorePostedRequiresBothScores(t *testing.T) {
	g := Game{HomeScore: intPtr(3)}
	if g.ScorePosted() {
		t.Fatal("expected one-sided score not to count as posted")
	}
	g.AwayScore = intPtr(2)
	if !g.ScorePosted() {
		t.Fatal("expected both scores to count as posted")
	}
}

func TestDisplayStatus(t *testing.T) {
	g := Game{Status: "Scheduled"}
	if got := g.DisplayStatus(); got != "scheduled" {
		t.Fatalf("expected scheduled, got %s", got)
	}
	g = Game{Status: "postponed", Cancelled: true}
	if got := g.DisplayStatus(); got != "cancelled" {
		t.Fatalf("expected derived cancellation to win, got %s", got)
	}
	g = Game{Status: "rescheduled pending"}
	if got := g.DisplayStatus(); got != "rescheduled pending" {
		t.Fatalf("expected unknown status preserved, got %s", got)
	}
}

func TestTeamPerspectiveHelpers(t *testing.T) {
	g := Game{
		Home: Participant{Name: "Alpha"},
		Away: Participant{Name: "Beta"},
	}
	if !g.InvolvesTeam("alpha") || !g.InvolvesTeam(" BETA ") {
		t.Fatal("expected case/space-insensitive involvement")
	}
	if g.InvolvesTeam("Gamma") {
		t.Fatal("expected uninvolved team to be rejected")
	}
	if !g.IsHomeTeam("Alpha") || g.IsHomeTeam("Beta") {
		t.Fatal("unexpected home resolution")
	}
	if g.Opponent("Alpha") != "Beta" || g.Opponent("Beta") != "Alpha" {
		t.Fatal("unexpected opponent resolution")
	}
}

func TestSortGamesDatelessLastAndStable(t *testing.T) {
	early := time.Date(2025, 4, 6, 17, 0, 0, 0, time.UTC)
	late := early.Add(2 * time.Hour)

	games := []Game{
		{ID: "c"},
		{ID: "b", Start: timePtr(late)},
		{ID: "d", Start: timePtr(early)},
		{ID: "a", Start: timePtr(early)},
		{ID: "a2"},
	}
	SortGames(games)

	want := []string{"a", "d", "b", "a2", "c"}
	for i, id := range want {
		if games[i].ID != id {
			t.Fatalf("position %d expected %s, got %s", i, id, games[i].ID)
		}
	}
}
