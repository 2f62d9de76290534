package config

import (
	"fmt"
	"time"

	"btsh-ics-generator/internal/domain"
)

// Config holds runtime configuration for one generator run.
type Config struct {
	// SeasonYear selects the season by year; SeasonID is the legacy direct
	// season id. At least one must be set, SeasonYear wins when both are.
	SeasonYear int
	SeasonID   int

	OutputDir       string
	DefaultTimezone string
	BaseURL         string
	RegistrationURL string

	OpponentRecentLimit int
	IncludeLeagueDays   bool
	IncludePlaceholders bool
	ShowDivision        bool
	ShowOpponentRecord  bool

	HTTPTimeout time.Duration
	MaxPages    int

	// PlaceholderNames are the sentinel participant names that mark a game
	// slot as undetermined. The upstream set has drifted over time, so it is
	// data rather than a hard-coded assumption.
	PlaceholderNames []string
}

// Load reads configuration from environment variables with sensible defaults.
// It fails when neither a season year nor a legacy season id is configured.
func Load() (Config, error) {
	cfg := Config{
		SeasonYear:          intEnvOrDefault(envSeasonYear, 0),
		SeasonID:            intEnvOrDefault(envSeasonID, 0),
		OutputDir:           envOrDefault(envOutputDir, defaultOutputDir),
		DefaultTimezone:     envOrDefault(envTimezone, defaultTimezone),
		BaseURL:             envOrDefault(envBaseURL, defaultBaseURL),
		RegistrationURL:     envOrDefault(envRegistrationURL, defaultRegistrationURL),
		OpponentRecentLimit: intEnvOrDefault(envRecentLimit, defaultRecentLimit),
		IncludeLeagueDays:   boolEnvOrDefault(envLeagueDays, true),
		IncludePlaceholders: boolEnvOrDefault(envPlaceholders, true),
		ShowDivision:        boolEnvOrDefault(envShowDivision, true),
		ShowOpponentRecord:  boolEnvOrDefault(envShowRecord, true),
		HTTPTimeout:         durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		MaxPages:            intEnvOrDefault(envMaxPages, defaultMaxPages),
		PlaceholderNames:    listEnvOrDefault(envPlaceholderNames, domain.DefaultPlaceholderNames),
	}

	if cfg.SeasonYear <= 0 && cfg.SeasonID <= 0 {
		return cfg, fmt.Errorf("config: %s or %s is required", envSeasonYear, envSeasonID)
	}
	return cfg, nil
}

// YearLabel returns the label used in calendar names and file names: the
// configured year when known, else the raw season id.
func (c Config) YearLabel(seasonID int) string {
	if c.SeasonYear > 0 {
		return fmt.Sprintf("%d", c.SeasonYear)
	}
	return fmt.Sprintf("%d", seasonID)
}
