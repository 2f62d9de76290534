package config

import "time"

const (
	envSeasonYear       = "SEASON_YEAR"
	envSeasonID         = "SEASON_ID"
	envOutputDir        = "OUTPUT_DIR"
	envTimezone         = "DEFAULT_TIMEZONE"
	envBaseURL          = "BTSH_BASE_URL"
	envRegistrationURL  = "REGISTRATION_URL"
	envRecentLimit      = "OPPONENT_RECENT_LIMIT"
	envLeagueDays       = "INCLUDE_LEAGUE_DAYS"
	envPlaceholders     = "INCLUDE_PLACEHOLDER_GAMES"
	envShowDivision     = "SHOW_DIVISION"
	envShowRecord       = "SHOW_OPPONENT_RECORD"
	envHTTPTimeout      = "HTTP_TIMEOUT"
	envMaxPages         = "MAX_PAGES"
	envPlaceholderNames = "PLACEHOLDER_NAMES"

	defaultOutputDir       = "docs"
	defaultTimezone        = "America/New_York"
	defaultBaseURL         = "https://api.btsh.org/api"
	defaultRegistrationURL = "https://btsh.org"
	defaultRecentLimit     = 10
	defaultHTTPTimeout     = 30 * time.Second
	// Ceiling on paginated fetches; guards against next-link loops upstream.
	defaultMaxPages = 50
)
