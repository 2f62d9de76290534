package providers

import (
	"context"

	"btsh-ics-generator/internal/domain"
)

// SeasonProvider lists the seasons known upstream.
type SeasonProvider interface {
	FetchSeasons(ctx context.Context) ([]domain.Season, error)
}

// RegistrationProvider fetches the teams registered for a season.
type RegistrationProvider interface {
	FetchRegistrations(ctx context.Context, seasonID int) ([]domain.Team, error)
}

// GameDayProvider fetches a season's game days, normalized into the flat game
// sequence plus any league-wide days.
type GameDayProvider interface {
	FetchGameDays(ctx context.Context, seasonID int) ([]domain.Game, []domain.LeagueDay, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	SeasonProvider
	RegistrationProvider
	GameDayProvider
}
