package btsh

import (
	"btsh-ics-generator/internal/domain"
	"btsh-ics-generator/internal/providers"
)

// ResolveSeasonID selects the season record matching the requested year.
// When several match, the most "current" one wins: explicit current flag,
// else latest start date, else highest id. This tie-break is a heuristic,
// not a guaranteed-correct rule; upstream has re-used years before.
func ResolveSeasonID(seasons []domain.Season, year int) (int, error) {
	var matches []domain.Season
	for _, s := range seasons {
		if s.Year == year {
			matches = append(matches, s)
		}
	}
	if len(matches) == 0 {
		return 0, &providers.SeasonNotFoundError{Year: year}
	}

	best := matches[0]
	for _, s := range matches[1:] {
		if preferSeason(s, best) {
			best = s
		}
	}
	return best.ID, nil
}

func preferSeason(a, b domain.Season) bool {
	if a.Current != b.Current {
		return a.Current
	}
	// ISO dates compare correctly as strings; an empty date always loses.
	if a.StartDate != b.StartDate {
		return a.StartDate > b.StartDate
	}
	return a.ID > b.ID
}
