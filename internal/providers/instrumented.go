package providers

import (
	"context"
	"log/slog"

	"btsh-ics-generator/internal/domain"
	"btsh-ics-generator/internal/logging"
	"btsh-ics-generator/internal/metrics"
)

const (
	endpointSeasons       = "seasons"
	endpointRegistrations = "registrations"
	endpointGameDays      = "game_days"
)

// instrumentedProvider wraps a DataProvider with logging and run metrics.
type instrumentedProvider struct {
	next     DataProvider
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewInstrumentedProvider decorates the given provider so every fetch is
// logged and counted.
func NewInstrumentedProvider(next DataProvider, logger *slog.Logger, recorder *metrics.Recorder) DataProvider {
	return &instrumentedProvider{next: next, logger: logger, recorder: recorder}
}

func (p *instrumentedProvider) FetchSeasons(ctx context.Context) ([]domain.Season, error) {
	seasons, err := p.next.FetchSeasons(ctx)
	p.record(ctx, endpointSeasons, len(seasons), err)
	return seasons, err
}

func (p *instrumentedProvider) FetchRegistrations(ctx context.Context, seasonID int) ([]domain.Team, error) {
	teams, err := p.next.FetchRegistrations(ctx, seasonID)
	p.record(ctx, endpointRegistrations, len(teams), err)
	return teams, err
}

func (p *instrumentedProvider) FetchGameDays(ctx context.Context, seasonID int) ([]domain.Game, []domain.LeagueDay, error) {
	games, days, err := p.next.FetchGameDays(ctx, seasonID)
	p.record(ctx, endpointGameDays, len(games), err)
	return games, days, err
}

func (p *instrumentedProvider) record(ctx context.Context, endpoint string, count int, err error) {
	p.recorder.RecordRequest(endpoint, err)
	if p.logger == nil {
		return
	}
	if err != nil {
		p.logger.Log(ctx, slog.LevelError, "provider fetch failed", slog.String(logging.FieldEndpoint, endpoint), slog.Any("error", err))
		return
	}
	p.logger.Log(ctx, slog.LevelInfo, "provider fetch complete", slog.String(logging.FieldEndpoint, endpoint), slog.Int(logging.FieldCount, count))
}
