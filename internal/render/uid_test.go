package render

import (
	"testing"
	"time"

	"btsh-ics-generator/internal/domain"
)

func TestGameUIDUsesUpstreamID(t *testing.T) {
	g := domain.Game{ID: "101"}
	if got := GameUID(g); got != "btsh-game-101" {
		t.Fatalf("unexpected uid %s", got)
	}
	if got := TeamGameUID("gouging-anklebiters", g); got != "btsh-team-gouging-anklebiters-game-101" {
		t.Fatalf("unexpected team uid %s", got)
	}
}

func TestGameUIDHashFallbackIsStable(t *testing.T) {
	start := time.Date(2025, 4, 6, 17, 0, 0, 0, time.UTC)
	g := domain.Game{
		Home:  domain.Participant{Name: "Alpha"},
		Away:  domain.Participant{Name: "Beta"},
		Start: &start,
	}

	first := GameUID(g)
	second := GameUID(g)
	if first != second {
		t.Fatalf("expected stable uid, got %s then %s", first, second)
	}

	other := g
	other.Away.Name = "Gamma"
	if GameUID(other) == first {
		t.Fatal("expected different participants to yield a different uid")
	}
}

func TestLeagueDayUID(t *testing.T) {
	day := time.Date(2025, 4, 13, 0, 0, 0, 0, time.UTC)
	if got := LeagueDayUID("", day); got != "btsh-league-day-20250413" {
		t.Fatalf("unexpected combined uid %s", got)
	}
	if got := LeagueDayUID("alpha", day); got != "btsh-league-day-alpha-20250413" {
		t.Fatalf("unexpected team uid %s", got)
	}
}
