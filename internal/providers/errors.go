package providers

import (
	"errors"
	"fmt"
)

// PageLimitError reports pagination that exceeded the configured ceiling,
// usually a sign of a next-link loop upstream.
type PageLimitError struct {
	URL      string
	MaxPages int
}

func (e *PageLimitError) Error() string {
	return fmt.Sprintf("pagination exceeded %d pages fetching %s", e.MaxPages, e.URL)
}

// AsPageLimitError attempts to unwrap an error into a PageLimitError.
func AsPageLimitError(err error) (*PageLimitError, bool) {
	var plErr *PageLimitError
	if errors.As(err, &plErr) {
		return plErr, true
	}
	return nil, false
}

// SeasonNotFoundError reports that no upstream season matched the requested
// year.
type SeasonNotFoundError struct {
	Year int
}

func (e *SeasonNotFoundError) Error() string {
	return fmt.Sprintf("no season found for year %d", e.Year)
}

// AsSeasonNotFoundError attempts to unwrap an error into a SeasonNotFoundError.
func AsSeasonNotFoundError(err error) (*SeasonNotFoundError, bool) {
	var snfErr *SeasonNotFoundError
	if errors.As(err, &snfErr) {
		return snfErr, true
	}
	return nil, false
}
