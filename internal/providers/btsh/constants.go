package btsh

import "time"

const providerName = "btsh"

const (
	defaultBaseURL     = "https://api.btsh.org/api"
	defaultTimezone    = "America/New_York"
	defaultHTTPTimeout = 30 * time.Second
	defaultMaxPages    = 50
)

// Ordered fallback keys for each logical field. The upstream schema has
// drifted across API versions, so resolution tries each alternate in order
// and takes the first present non-null value.
var (
	gameIDKeys    = []string{"id", "game_id"}
	startKeys     = []string{"start", "start_time", "datetime", "game_time", "time", "starts_at"}
	endKeys       = []string{"end", "end_time", "ends_at"}
	durationKeys  = []string{"duration", "duration_minutes"}
	statusKeys    = []string{"status", "state"}
	cancelledKeys = []string{"cancelled", "is_cancelled"}

	homeTeamKeys    = []string{"home_team", "home", "team_home", "team1", "team_1"}
	awayTeamKeys    = []string{"away_team", "away", "team_away", "team2", "team_2"}
	homeDisplayKeys = []string{"home_team_display"}
	awayDisplayKeys = []string{"away_team_display"}
	teamNameKeys    = []string{"name", "short_name", "display_name"}

	homeScoreKeys = []string{"home_team_num_goals", "home_score", "score_home", "team1_score"}
	awayScoreKeys = []string{"away_team_num_goals", "away_score", "score_away", "team2_score"}

	overtimeKeys    = []string{"went_ot", "overtime", "is_overtime"}
	shootoutKeys    = []string{"went_so", "shootout", "is_shootout"}
	placeholderKeys = []string{"placeholder", "is_placeholder", "tbd"}

	venueKeys = []string{"location", "court", "venue", "rink"}
	noteKeys  = []string{"note", "notes", "label"}

	dayKeys      = []string{"day", "date"}
	dayTypeKeys  = []string{"type", "day_type"}
	dayTitleKeys = []string{"title", "label", "name"}
	dayNoteKeys  = []string{"note", "notes"}

	seasonStartKeys   = []string{"start_date", "start", "begins"}
	seasonCurrentKeys = []string{"current", "is_current", "active"}
)
