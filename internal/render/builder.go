package render

import (
	"fmt"
	"strings"
	"time"

	"btsh-ics-generator/internal/domain"
)

// Builder renders titles and descriptions for calendar events. Games must be
// the full normalized season in ascending start order; every description's
// history sections are computed against it.
type Builder struct {
	Games           []domain.Game
	Location        *time.Location
	TZName          string
	SeasonLabel     string
	RegistrationURL string
	RecentLimit     int
	ShowRecord      bool
}

func sameTeam(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// TeamTitle builds the event title from the team's perspective:
// "Team vs Opponent" at home, "Team @ Opponent" away, with optional division
// prefix and status/score decoration. Placeholder games get a neutral title.
func TeamTitle(g domain.Game, team domain.Team, showDivision bool) string {
	if g.Placeholder {
		return PlaceholderTitle(g)
	}
	opp := strings.TrimSpace(g.Opponent(team.Name))
	base := team.Name + " @ " + opp
	if g.IsHomeTeam(team.Name) {
		base = team.Name + " vs " + opp
	}
	if showDivision && team.Division != "" {
		base = "[" + team.Division + "] " + base
	}
	return decorate(g, base)
}

// CombinedTitle builds the all-games calendar title, visitor first.
func CombinedTitle(g domain.Game) string {
	if g.Placeholder {
		return PlaceholderTitle(g)
	}
	return decorate(g, strings.TrimSpace(g.Away.Name)+" @ "+strings.TrimSpace(g.Home.Name))
}

// PlaceholderTitle builds a neutral title for games whose participants are
// not yet known; identical on every calendar it appears on.
func PlaceholderTitle(g domain.Game) string {
	return nameOrTBD(g.Home.Name) + " vs " + nameOrTBD(g.Away.Name) + " (TBD)"
}

func nameOrTBD(name string) string {
	n := strings.TrimSpace(name)
	if n == "" || n == "-" {
		return "TBD"
	}
	return n
}

// decorate applies the status prefix and, for completed games, the
// away-home score suffix.
func decorate(g domain.Game, base string) string {
	if status := g.DisplayStatus(); status != "scheduled" {
		base = "[" + strings.ToUpper(status) + "] " + base
	}
	if g.Completed() && g.ScorePosted() {
		base += fmt.Sprintf(" (%d-%d%s)", *g.AwayScore, *g.HomeScore, extraTimeSuffix(g))
	}
	return base
}

func extraTimeSuffix(g domain.Game) string {
	switch {
	case g.WentSO:
		return " SO"
	case g.WentOT:
		return " OT"
	}
	return ""
}

// ResultTag renders a W/L/T token with score from the named side's
// perspective, e.g. "W 5-2" or "L (OT) 3-4". Empty when no score is posted.
func ResultTag(g domain.Game, teamIsHome bool) string {
	if !g.ScorePosted() {
		return ""
	}
	my, their := *g.HomeScore, *g.AwayScore
	if !teamIsHome {
		my, their = their, my
	}

	outcome := "T"
	switch {
	case my > their:
		outcome = "W"
	case my < their:
		outcome = "L"
	}

	suffix := ""
	if outcome != "T" {
		if g.WentSO {
			suffix = " (SO)"
		} else if g.WentOT {
			suffix = " (OT)"
		}
	}
	return fmt.Sprintf("%s%s %d-%d", outcome, suffix, my, their)
}

func sectionRule(title string) []string {
	line := strings.Repeat("-", 40)
	return []string{line, title, line}
}

// TeamDescription builds the multi-section description for one event on a
// team's calendar.
func (b *Builder) TeamDescription(g domain.Game, team domain.Team) string {
	lines := b.gameInfo(g)

	opp := strings.TrimSpace(g.Opponent(team.Name))
	if opp != "" && opp != "-" && !g.Placeholder && g.Start != nil {
		lines = append(lines, "")
		lines = append(lines, b.headToHead(team.Name, opp, *g.Start)...)
		lines = append(lines, "")
		lines = append(lines, b.opponentGames(opp, *g.Start)...)
		if b.ShowRecord {
			lines = append(lines, "")
			lines = append(lines, b.opponentRecord(opp, *g.Start)...)
		}
	}
	return strings.Join(lines, "\n")
}

// CombinedDescription builds the all-games calendar description, game info
// only.
func (b *Builder) CombinedDescription(g domain.Game) string {
	return strings.Join(b.gameInfo(g), "\n")
}

// LeagueDayTitle labels a league-wide day entry.
func LeagueDayTitle(ld domain.LeagueDay) string {
	label := ld.Title
	if label == "" {
		label = ld.Type
	}
	if label == "" {
		label = "League Day"
	}
	return "[BTSH] " + label
}

// LeagueDayDescription builds the description for a league-wide day entry.
func LeagueDayDescription(ld domain.LeagueDay) string {
	lines := sectionRule("LEAGUE DAY")
	if ld.Type != "" {
		lines = append(lines, "Type: "+ld.Type)
	}
	if ld.Title != "" {
		lines = append(lines, "Title: "+ld.Title)
	}
	if ld.Note != "" {
		lines = append(lines, "Note: "+ld.Note)
	}
	return strings.Join(lines, "\n")
}

func (b *Builder) gameInfo(g domain.Game) []string {
	lines := sectionRule("GAME INFO")
	if b.SeasonLabel != "" {
		lines = append(lines, "Season: "+b.SeasonLabel)
	}
	lines = append(lines, "Status: "+g.DisplayStatus())
	if g.Start != nil {
		local := g.Start.In(b.Location)
		lines = append(lines, fmt.Sprintf("Start (%s): %s", b.TZName, local.Format("2006-01-02 15:04 MST")))
	}
	if g.Venue != "" {
		lines = append(lines, "Location: "+g.Venue)
	}
	if g.Note != "" {
		lines = append(lines, "Note: "+g.Note)
	}
	if b.RegistrationURL != "" {
		lines = append(lines, "", "Check-in / registration: "+b.RegistrationURL)
	}
	return lines
}

// headToHead lists prior meetings between the two teams, oldest first. Only
// games starting strictly before the event count.
func (b *Builder) headToHead(team, opp string, before time.Time) []string {
	var rel []domain.Game
	for _, g := range b.Games {
		if g.Start == nil || !g.Start.Before(before) {
			continue
		}
		meets := (sameTeam(g.Home.Name, team) && sameTeam(g.Away.Name, opp)) ||
			(sameTeam(g.Home.Name, opp) && sameTeam(g.Away.Name, team))
		if meets {
			rel = append(rel, g)
		}
	}

	out := sectionRule("HEAD-TO-HEAD vs " + opp)
	if len(rel) == 0 {
		return append(out, "    (no prior matchups)")
	}
	for _, g := range rel {
		out = append(out, b.historyLine(g, team))
	}
	return out
}

// opponentGames lists the opponent's most recent games before the event,
// capped to RecentLimit and displayed oldest first.
func (b *Builder) opponentGames(opp string, before time.Time) []string {
	rel := b.priorGames(opp, before)
	if b.RecentLimit > 0 && len(rel) > b.RecentLimit {
		rel = rel[len(rel)-b.RecentLimit:]
	}

	out := sectionRule(strings.ToUpper(opp) + " GAMES-TO-DATE")
	if len(rel) == 0 {
		return append(out, "    (none)")
	}
	for _, g := range rel {
		out = append(out, b.historyLine(g, opp))
	}
	return out
}

// opponentRecord tallies the opponent's completed, scored games before the
// event.
func (b *Builder) opponentRecord(opp string, before time.Time) []string {
	var wins, losses, ties int
	for _, g := range b.priorGames(opp, before) {
		if !g.Completed() || !g.ScorePosted() {
			continue
		}
		my, their := *g.HomeScore, *g.AwayScore
		if !sameTeam(g.Home.Name, opp) {
			my, their = their, my
		}
		switch {
		case my > their:
			wins++
		case my < their:
			losses++
		default:
			ties++
		}
	}

	out := sectionRule("RECORD-TO-DATE: " + strings.ToUpper(opp))
	return append(out, fmt.Sprintf("    Record: %d-%d-%d (W-L-T)", wins, losses, ties))
}

// priorGames returns the team's dated games starting strictly before the
// cutoff, in ascending order.
func (b *Builder) priorGames(team string, before time.Time) []domain.Game {
	var rel []domain.Game
	for _, g := range b.Games {
		if g.Start == nil || !g.Start.Before(before) {
			continue
		}
		if sameTeam(g.Home.Name, team) || sameTeam(g.Away.Name, team) {
			rel = append(rel, g)
		}
	}
	return rel
}

func (b *Builder) historyLine(g domain.Game, teamName string) string {
	local := g.Start.In(b.Location)
	vsAt := "@"
	if g.IsHomeTeam(teamName) {
		vsAt = "vs"
	}
	line := fmt.Sprintf("    %s %s %s", ShortDate(local), vsAt, strings.TrimSpace(g.Opponent(teamName)))

	tag := ResultTag(g, g.IsHomeTeam(teamName))
	if g.Cancelled {
		tag = "Cancelled"
	}
	if tag != "" {
		line += " (" + tag + ")"
	}
	return line
}
