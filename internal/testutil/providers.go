package testutil

import (
	"context"

	"btsh-ics-generator/internal/domain"
)

// StubProvider returns canned data for every fetch, or the matching error
// when set.
type StubProvider struct {
	Seasons    []domain.Season
	Teams      []domain.Team
	Games      []domain.Game
	LeagueDays []domain.LeagueDay

	SeasonsErr       error
	RegistrationsErr error
	GameDaysErr      error
}

func (p *StubProvider) FetchSeasons(ctx context.Context) ([]domain.Season, error) {
	_ = ctx
	if p.SeasonsErr != nil {
		return nil, p.SeasonsErr
	}
	return p.Seasons, nil
}

func (p *StubProvider) FetchRegistrations(ctx context.Context, seasonID int) ([]domain.Team, error) {
	_ = ctx
	_ = seasonID
	if p.RegistrationsErr != nil {
		return nil, p.RegistrationsErr
	}
	return p.Teams, nil
}

func (p *StubProvider) FetchGameDays(ctx context.Context, seasonID int) ([]domain.Game, []domain.LeagueDay, error) {
	_ = ctx
	_ = seasonID
	if p.GameDaysErr != nil {
		return nil, nil, p.GameDaysErr
	}
	return p.Games, p.LeagueDays, nil
}
