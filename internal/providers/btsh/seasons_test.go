package btsh

import (
	"testing"

	"btsh-ics-generator/internal/domain"
	"btsh-ics-generator/internal/providers"
)

func TestResolveSeasonIDSingleMatch(t *testing.T) {
	seasons := []domain.Season{
		{ID: 1, Year: 2024},
		{ID: 2, Year: 2025},
	}

	id, err := ResolveSeasonID(seasons, 2025)
	if err != nil {
		t.Fatalf("expected resolution, got %v", err)
	}
	if id != 2 {
		t.Fatalf("expected season 2, got %d", id)
	}
}

func TestResolveSeasonIDNotFoundNamesYear(t *testing.T) {
	_, err := ResolveSeasonID([]domain.Season{{ID: 1, Year: 2024}}, 2031)
	if err == nil {
		t.Fatal("expected an error")
	}
	snf, ok := providers.AsSeasonNotFoundError(err)
	if !ok || snf.Year != 2031 {
		t.Fatalf("expected SeasonNotFoundError for 2031, got %v", err)
	}
}

func TestResolveSeasonIDPrefersCurrentFlag(t *testing.T) {
	seasons := []domain.Season{
		{ID: 9, Year: 2025, StartDate: "2025-09-01"},
		{ID: 3, Year: 2025, Current: true, StartDate: "2025-04-01"},
	}

	id, err := ResolveSeasonID(seasons, 2025)
	if err != nil {
		t.Fatalf("expected resolution, got %v", err)
	}
	if id != 3 {
		t.Fatalf("expected current-flagged season, got %d", id)
	}
}

func TestResolveSeasonIDPrefersLatestStartDate(t *testing.T) {
	seasons := []domain.Season{
		{ID: 3, Year: 2025, StartDate: "2025-04-01"},
		{ID: 4, Year: 2025, StartDate: "2025-09-01"},
	}

	id, err := ResolveSeasonID(seasons, 2025)
	if err != nil {
		t.Fatalf("expected resolution, got %v", err)
	}
	if id != 4 {
		t.Fatalf("expected later start date, got %d", id)
	}
}

func TestResolveSeasonIDFallsBackToHighestID(t *testing.T) {
	seasons := []domain.Season{
		{ID: 3, Year: 2025},
		{ID: 7, Year: 2025},
		{ID: 5, Year: 2025},
	}

	id, err := ResolveSeasonID(seasons, 2025)
	if err != nil {
		t.Fatalf("expected resolution, got %v", err)
	}
	if id != 7 {
		t.Fatalf("expected highest id, got %d", id)
	}
}
