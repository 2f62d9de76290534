package render

import (
	"fmt"
	"hash/fnv"
	"time"

	"btsh-ics-generator/internal/domain"
)

// UIDs are deterministic functions of stable inputs so re-running the
// generator updates existing entries in subscribing clients instead of
// duplicating them.

// GameUID identifies a game on the combined calendar.
func GameUID(g domain.Game) string {
	return "btsh-game-" + gameKey(g)
}

// TeamGameUID identifies a game on one team's calendar.
func TeamGameUID(slug string, g domain.Game) string {
	return "btsh-team-" + slug + "-game-" + gameKey(g)
}

// LeagueDayUID identifies a league-wide day entry; slug is empty on the
// combined calendar.
func LeagueDayUID(slug string, day time.Time) string {
	if slug == "" {
		return "btsh-league-day-" + day.Format("20060102")
	}
	return "btsh-league-day-" + slug + "-" + day.Format("20060102")
}

// gameKey prefers the upstream id and falls back to a hash of participants
// and start time for id-less records.
func gameKey(g domain.Game) string {
	if g.ID != "" {
		return g.ID
	}
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|", g.Home.Name, g.Away.Name)
	if g.Start != nil {
		fmt.Fprint(h, g.Start.UTC().Format(time.RFC3339))
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
