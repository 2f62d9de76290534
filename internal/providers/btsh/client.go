package btsh

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"btsh-ics-generator/internal/domain"
	"btsh-ics-generator/internal/logging"
	"btsh-ics-generator/internal/metrics"
	"btsh-ics-generator/internal/providers"
)

// Config controls how the btsh client reaches the upstream API.
type Config struct {
	BaseURL              string
	HTTPClient           *http.Client
	Timezone             string
	MaxPages             int
	PlaceholderSentinels []string
	Logger               *slog.Logger
	Recorder             *metrics.Recorder
}

// Client fetches seasons, registrations and game days from the btsh API and
// maps them to domain models.
type Client struct {
	baseURL   string
	client    httpDoer
	loc       *time.Location
	maxPages  int
	sentinels []string
	logger    *slog.Logger
	recorder  *metrics.Recorder
}

// NewClient constructs a btsh client with the provided configuration.
func NewClient(cfg Config) *Client {
	sentinels := cfg.PlaceholderSentinels
	if len(sentinels) == 0 {
		sentinels = domain.DefaultPlaceholderNames
	}
	return &Client{
		baseURL:   normalizeBaseURL(cfg.BaseURL),
		client:    resolveHTTPClient(cfg.HTTPClient),
		loc:       resolveLocation(cfg.Timezone),
		maxPages:  resolveMaxPages(cfg.MaxPages),
		sentinels: sentinels,
		logger:    cfg.Logger,
		recorder:  cfg.Recorder,
	}
}

// Location exposes the client's resolved timezone.
func (c *Client) Location() *time.Location {
	return c.loc
}

// FetchSeasons retrieves all season records.
func (c *Client) FetchSeasons(ctx context.Context) ([]domain.Season, error) {
	items, err := c.fetchList(ctx, endpointSeasons, c.baseURL+"/seasons/")
	if err != nil {
		return nil, err
	}

	seasons := make([]domain.Season, 0, len(items))
	for _, item := range items {
		season, ok := c.mapSeason(item)
		if !ok {
			continue
		}
		seasons = append(seasons, season)
	}
	return seasons, nil
}

// FetchRegistrations retrieves the teams registered for a season.
func (c *Client) FetchRegistrations(ctx context.Context, seasonID int) ([]domain.Team, error) {
	url := c.baseURL + "/team-season-registrations/?season=" + strconv.Itoa(seasonID)
	items, err := c.fetchList(ctx, endpointRegistrations, url)
	if err != nil {
		return nil, err
	}

	teams := make([]domain.Team, 0, len(items))
	for _, item := range items {
		team, ok := c.mapRegistration(item)
		if !ok {
			continue
		}
		teams = append(teams, team)
	}
	return teams, nil
}

// FetchGameDays retrieves and normalizes a season's game days.
func (c *Client) FetchGameDays(ctx context.Context, seasonID int) ([]domain.Game, []domain.LeagueDay, error) {
	url := c.baseURL + "/game_days/?season=" + strconv.Itoa(seasonID)
	items, err := c.fetchList(ctx, endpointGameDays, url)
	if err != nil {
		return nil, nil, err
	}

	games := c.extractGames(items)
	days := c.extractLeagueDays(items)
	c.recorder.AddGamesNormalized(len(games))
	return games, days, nil
}

// pageEnvelope is the paginated response shape; list endpoints sometimes
// return a bare array instead.
type pageEnvelope struct {
	Results []json.RawMessage `json:"results"`
	Next    *string           `json:"next"`
}

const (
	endpointSeasons       = "seasons"
	endpointRegistrations = "registrations"
	endpointGameDays      = "game_days"
)

func (c *Client) fetchList(ctx context.Context, endpoint, firstURL string) ([]json.RawMessage, error) {
	var items []json.RawMessage
	url := firstURL

	for page := 1; ; page++ {
		if page > c.maxPages {
			return nil, &providers.PageLimitError{URL: firstURL, MaxPages: c.maxPages}
		}

		body, err := c.get(ctx, url)
		if err != nil {
			return nil, err
		}
		c.recorder.RecordPage(endpoint)
		logging.Info(c.logger, "page fetched",
			logging.FieldEndpoint, endpoint,
			logging.FieldURL, url,
			logging.FieldPage, page)

		trimmed := bytes.TrimLeft(body, " \t\r\n")
		if len(trimmed) > 0 && trimmed[0] == '[' {
			var list []json.RawMessage
			if err := json.Unmarshal(trimmed, &list); err != nil {
				return nil, fmt.Errorf("%s: decode %s: %w", providerName, url, err)
			}
			return append(items, list...), nil
		}

		var env pageEnvelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("%s: decode %s: %w", providerName, url, err)
		}
		if env.Results == nil {
			return nil, fmt.Errorf("%s: unexpected response shape from %s (want list or {results:[...]})", providerName, url)
		}

		items = append(items, env.Results...)
		if env.Next == nil || strings.TrimSpace(*env.Next) == "" {
			return items, nil
		}
		url = *env.Next
	}
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%s: unexpected status %d from %s: %s", providerName, resp.StatusCode, url, strings.TrimSpace(string(excerpt)))
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) skipRecord(what string, err error) {
	c.recorder.RecordSkippedRecord()
	logging.Warn(c.logger, "skipping malformed record", "record", what, "error", err)
}
