package btsh

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"btsh-ics-generator/internal/domain"
	"btsh-ics-generator/internal/timeutil"
)

// pick returns the first present, non-null value among keys.
func pick(m map[string]any, keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func pickString(m map[string]any, keys []string) string {
	v, ok := pick(m, keys)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

func pickInt(m map[string]any, keys []string) *int {
	v, ok := pick(m, keys)
	if !ok {
		return nil
	}
	return toInt(v)
}

func toInt(v any) *int {
	switch n := v.(type) {
	case float64:
		i := int(n)
		return &i
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return nil
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return nil
		}
		return &i
	case json.Number:
		i, err := strconv.Atoi(n.String())
		if err != nil {
			return nil
		}
		return &i
	default:
		return nil
	}
}

func pickBool(m map[string]any, keys []string) bool {
	v, ok := pick(m, keys)
	if !ok {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0
	case string:
		s := strings.ToLower(strings.TrimSpace(b))
		return s == "true" || s == "1" || s == "yes"
	default:
		return false
	}
}

// parseParticipant resolves the string-or-object union upstream uses for
// teams: a full object carries id and name, a bare number is id-only, a bare
// string is name-only.
func parseParticipant(v any) domain.Participant {
	switch t := v.(type) {
	case map[string]any:
		return domain.Participant{
			ID:   pickInt(t, []string{"id"}),
			Name: pickString(t, teamNameKeys),
		}
	case float64:
		id := int(t)
		return domain.Participant{ID: &id}
	case string:
		return domain.Participant{Name: strings.TrimSpace(t)}
	default:
		return domain.Participant{}
	}
}

// mapGame normalizes one loose game object. day is the parent game day's
// calendar date, used to complete time-only start/end values.
func (c *Client) mapGame(raw map[string]any, day *time.Time) domain.Game {
	game := domain.Game{
		ID:     pickString(raw, gameIDKeys),
		Status: pickString(raw, statusKeys),
		WentOT: pickBool(raw, overtimeKeys),
		WentSO: pickBool(raw, shootoutKeys),
		Venue:  pickString(raw, venueKeys),
		Note:   pickString(raw, noteKeys),
	}
	if game.Status == "" {
		game.Status = "scheduled"
	}
	game.Cancelled = pickBool(raw, cancelledKeys) || domain.IsCancelledStatus(game.Status)

	if start, ok := timeutil.ParseInstant(pickString(raw, startKeys), day, c.loc); ok {
		game.Start = &start

		var explicitEnd *time.Time
		if end, ok := timeutil.ParseInstant(pickString(raw, endKeys), day, c.loc); ok {
			explicitEnd = &end
		}
		duration := 0
		if d := pickInt(raw, durationKeys); d != nil {
			duration = *d
		}
		end := timeutil.SynthesizeEnd(start, explicitEnd, duration)
		game.End = &end
	}

	home, _ := pick(raw, homeTeamKeys)
	away, _ := pick(raw, awayTeamKeys)
	game.Home = parseParticipant(home)
	game.Away = parseParticipant(away)

	// Display-name overrides win over the nested team objects.
	if display := pickString(raw, homeDisplayKeys); display != "" {
		game.Home.Name = display
	}
	if display := pickString(raw, awayDisplayKeys); display != "" {
		game.Away.Name = display
	}

	game.HomeScore = pickInt(raw, homeScoreKeys)
	game.AwayScore = pickInt(raw, awayScoreKeys)

	// Upstream placeholder flags are ORed in, never trusted alone.
	game.Placeholder = domain.IsPlaceholderName(game.Home.Name, c.sentinels) ||
		domain.IsPlaceholderName(game.Away.Name, c.sentinels) ||
		pickBool(raw, placeholderKeys)

	if game.Note == "" {
		switch {
		case game.Cancelled:
			game.Note = "Cancelled"
		case game.Placeholder:
			game.Note = "TBD / Placeholder"
		}
	}
	return game
}

// extractGames flattens the day/game structure into the game sequence. A
// malformed record is skipped so one bad row never aborts the run.
func (c *Client) extractGames(days []json.RawMessage) []domain.Game {
	var games []domain.Game
	for _, rawDay := range days {
		var dayObj map[string]any
		if err := json.Unmarshal(rawDay, &dayObj); err != nil {
			c.skipRecord("game_day", err)
			continue
		}

		dayDate := parseDayDate(dayObj)

		rawGames, _ := dayObj["games"].([]any)
		for _, rawGame := range rawGames {
			gameObj, ok := rawGame.(map[string]any)
			if !ok {
				c.skipRecord("game", fmt.Errorf("not an object: %T", rawGame))
				continue
			}
			games = append(games, c.mapGame(gameObj, dayDate))
		}
	}
	return games
}

// extractLeagueDays finds day rows that carry league-wide significance but no
// games (holidays, make-up slots).
func (c *Client) extractLeagueDays(days []json.RawMessage) []domain.LeagueDay {
	var out []domain.LeagueDay
	for _, rawDay := range days {
		var dayObj map[string]any
		if err := json.Unmarshal(rawDay, &dayObj); err != nil {
			continue
		}

		dayDate := parseDayDate(dayObj)
		if dayDate == nil {
			continue
		}
		if rawGames, _ := dayObj["games"].([]any); len(rawGames) > 0 {
			continue
		}

		day := domain.LeagueDay{
			Type:  pickString(dayObj, dayTypeKeys),
			Title: pickString(dayObj, dayTitleKeys),
			Note:  pickString(dayObj, dayNoteKeys),
		}
		if day.Type == "" && day.Title == "" && day.Note == "" {
			continue
		}
		day.Day = time.Date(dayDate.Year(), dayDate.Month(), dayDate.Day(), 0, 0, 0, 0, c.loc)
		out = append(out, day)
	}
	return out
}

func parseDayDate(dayObj map[string]any) *time.Time {
	raw := pickString(dayObj, dayKeys)
	if !timeutil.IsDateOnly(raw) {
		return nil
	}
	d, err := timeutil.ParseDate(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &d
}

func (c *Client) mapSeason(raw json.RawMessage) (domain.Season, bool) {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		c.skipRecord("season", err)
		return domain.Season{}, false
	}

	id := pickInt(obj, []string{"id"})
	year := pickInt(obj, []string{"year"})
	if id == nil || year == nil {
		c.skipRecord("season", fmt.Errorf("missing id or year"))
		return domain.Season{}, false
	}

	return domain.Season{
		ID:        *id,
		Year:      *year,
		Current:   pickBool(obj, seasonCurrentKeys),
		StartDate: pickString(obj, seasonStartKeys),
	}, true
}

func (c *Client) mapRegistration(raw json.RawMessage) (domain.Team, bool) {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		c.skipRecord("registration", err)
		return domain.Team{}, false
	}

	team := parseParticipant(obj["team"])
	if team.Name == "" {
		return domain.Team{}, false
	}

	reg := domain.Team{Name: team.Name}
	if team.ID != nil {
		reg.ID = *team.ID
	}
	if div, ok := obj["division"].(map[string]any); ok {
		reg.Division = pickString(div, []string{"name"})
		reg.DivisionCode = pickString(div, []string{"short_name", "code"})
	}
	return reg, true
}
