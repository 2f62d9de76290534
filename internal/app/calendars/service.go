package calendars

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"btsh-ics-generator/internal/calfile"
	"btsh-ics-generator/internal/config"
	"btsh-ics-generator/internal/domain"
	"btsh-ics-generator/internal/ics"
	"btsh-ics-generator/internal/logging"
	"btsh-ics-generator/internal/metrics"
	"btsh-ics-generator/internal/providers"
	"btsh-ics-generator/internal/providers/btsh"
	"btsh-ics-generator/internal/render"
)

// Deps carries the collaborators a Service needs. Now defaults to time.Now
// when nil so tests can pin the generation timestamp.
type Deps struct {
	Config   config.Config
	Provider providers.DataProvider
	Store    *calfile.Store
	Recorder *metrics.Recorder
	Logger   *slog.Logger
	Now      func() time.Time
}

// Service runs one end-to-end generation: fetch the season's data, render a
// combined calendar plus one per registered team, and write them to disk.
type Service struct {
	cfg      config.Config
	provider providers.DataProvider
	store    *calfile.Store
	recorder *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
	loc      *time.Location
}

// NewService constructs a Service from its dependencies.
func NewService(deps Deps) *Service {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	loc, err := time.LoadLocation(deps.Config.DefaultTimezone)
	if err != nil {
		loc = time.UTC
	}
	return &Service{
		cfg:      deps.Config,
		provider: deps.Provider,
		store:    deps.Store,
		recorder: deps.Recorder,
		logger:   deps.Logger,
		now:      now,
		loc:      loc,
	}
}

// Run performs one generation pass. Calendar content depends only on the
// fetched data and the injected clock, so two runs over the same inputs
// produce byte-identical files.
func (s *Service) Run(ctx context.Context) error {
	seasonID, err := s.resolveSeasonID(ctx)
	if err != nil {
		return err
	}

	teams, err := s.provider.FetchRegistrations(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("fetch registrations: %w", err)
	}
	if len(teams) == 0 {
		return fmt.Errorf("no teams registered for season %d", seasonID)
	}

	games, leagueDays, err := s.provider.FetchGameDays(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("fetch game days: %w", err)
	}
	domain.SortGames(games)

	yearLabel := s.cfg.YearLabel(seasonID)
	builder := &render.Builder{
		Games:           games,
		Location:        s.loc,
		TZName:          s.cfg.DefaultTimezone,
		SeasonLabel:     yearLabel,
		RegistrationURL: s.cfg.RegistrationURL,
		RecentLimit:     s.cfg.OpponentRecentLimit,
		ShowRecord:      s.cfg.ShowOpponentRecord,
	}
	stamp := s.now().UTC()

	logging.Info(s.logger, "season data fetched",
		logging.FieldSeason, seasonID,
		logging.FieldCount, len(games),
		"teams", len(teams),
		"league_days", len(leagueDays))

	if err := s.writeCombined(yearLabel, builder, games, leagueDays, stamp); err != nil {
		return err
	}
	for _, team := range teams {
		if err := s.writeTeam(yearLabel, builder, team, games, leagueDays, stamp); err != nil {
			return err
		}
	}

	snap := s.recorder.Snapshot()
	logging.Info(s.logger, "generation complete",
		logging.FieldSeason, seasonID,
		"requests", snap.Requests,
		"request_errors", snap.Errors,
		"games_normalized", snap.GamesNormalized,
		"records_skipped", snap.RecordsSkipped,
		"events_rendered", snap.EventsRendered,
		"calendars_written", snap.CalendarsWritten)
	return nil
}

// resolveSeasonID maps the configured year to an upstream season id, falling
// back to the legacy direct id when no year is set.
func (s *Service) resolveSeasonID(ctx context.Context) (int, error) {
	if s.cfg.SeasonYear <= 0 {
		return s.cfg.SeasonID, nil
	}
	seasons, err := s.provider.FetchSeasons(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch seasons: %w", err)
	}
	id, err := btsh.ResolveSeasonID(seasons, s.cfg.SeasonYear)
	if err != nil {
		return 0, err
	}
	logging.Info(s.logger, "season resolved",
		logging.FieldYear, s.cfg.SeasonYear,
		logging.FieldSeason, id)
	return id, nil
}

func (s *Service) writeCombined(yearLabel string, builder *render.Builder, games []domain.Game, leagueDays []domain.LeagueDay, stamp time.Time) error {
	cal := ics.NewCalendar("BTSH All Games "+yearLabel, s.cfg.DefaultTimezone)
	count := s.addLeagueDays(cal, "", leagueDays, stamp)

	// The combined document carries every dated game, placeholder slots
	// included; the placeholder toggle only affects team calendars.
	for _, g := range games {
		if g.Start == nil {
			continue
		}
		cal.AddEvent(s.event(render.GameUID(g), render.CombinedTitle(g), builder.CombinedDescription(g), g, stamp))
		count++
	}

	return s.write(calfile.CombinedFileName(yearLabel), cal, count)
}

func (s *Service) writeTeam(yearLabel string, builder *render.Builder, team domain.Team, games []domain.Game, leagueDays []domain.LeagueDay, stamp time.Time) error {
	slug := calfile.Slug(team.Name)
	cal := ics.NewCalendar("BTSH "+team.Name+" "+yearLabel, s.cfg.DefaultTimezone)
	count := s.addLeagueDays(cal, slug, leagueDays, stamp)

	for _, g := range games {
		if g.Start == nil {
			continue
		}
		// A team's calendar always carries its own games, placeholders
		// included. Placeholder slots naming no registered side may involve
		// anyone, so they join every calendar when configured.
		if !g.InvolvesTeam(team.Name) && !(g.Placeholder && s.cfg.IncludePlaceholders) {
			continue
		}
		title := render.TeamTitle(g, team, s.cfg.ShowDivision)
		cal.AddEvent(s.event(render.TeamGameUID(slug, g), title, builder.TeamDescription(g, team), g, stamp))
		count++
	}

	return s.write(calfile.TeamFileName(team.Name, yearLabel), cal, count, logging.FieldTeam, team.Name)
}

func (s *Service) addLeagueDays(cal *ics.Calendar, slug string, leagueDays []domain.LeagueDay, stamp time.Time) int {
	if !s.cfg.IncludeLeagueDays {
		return 0
	}
	for _, ld := range leagueDays {
		cal.AddAllDayEvent(ics.AllDayEvent{
			UID:         render.LeagueDayUID(slug, ld.Day),
			Summary:     render.LeagueDayTitle(ld),
			Day:         ld.Day,
			Description: render.LeagueDayDescription(ld),
			Stamp:       stamp,
		})
	}
	return len(leagueDays)
}

func (s *Service) event(uid, summary, description string, g domain.Game, stamp time.Time) ics.Event {
	ev := ics.Event{
		UID:         uid,
		Summary:     summary,
		TZID:        s.cfg.DefaultTimezone,
		Location:    g.Venue,
		URL:         s.cfg.RegistrationURL,
		Description: description,
		Stamp:       stamp,
		Start:       g.Start.In(s.loc),
	}
	if g.End != nil {
		ev.End = g.End.In(s.loc)
	}
	return ev
}

func (s *Service) write(name string, cal *ics.Calendar, events int, attrs ...any) error {
	wrote, err := s.store.Write(name, cal.Bytes())
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	s.recorder.AddEventsRendered(events)
	if wrote {
		s.recorder.RecordCalendarWritten()
	}
	args := []any{
		logging.FieldCalendar, name,
		logging.FieldPath, s.store.Path(name),
		logging.FieldCount, events,
		"changed", wrote,
	}
	logging.Info(s.logger, "calendar written", append(args, attrs...)...)
	return nil
}
