package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/directory"
)

type AirportSuggestion struct {
	IATA    string
	Name    string
	City    string
	Country string
}

// Airports suggests airports for a partial city, name, or IATA query.
// The external directory is consulted when configured; any failure or
// empty answer falls back to the embedded directory, so the operation
// never errors out on upstream trouble.
func (u *Usecase) Airports(ctx context.Context, query string) ([]AirportSuggestion, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []AirportSuggestion{}, nil
	}

	if u.suggest != nil && u.suggest.Enabled() {
		external, err := u.suggest.Suggest(ctx, query)
		if err != nil {
			slog.WarnContext(ctx, "airport suggestion lookup failed", "query", query, "error", err)
		}
		if len(external) > 0 {
			suggestions := make([]AirportSuggestion, 0, len(external))
			for _, item := range external {
				suggestions = append(suggestions, AirportSuggestion{
					IATA:    item.IATA,
					Name:    item.Name,
					City:    item.City,
					Country: item.Country,
				})
			}
			return suggestions, nil
		}
	}

	matches := directory.Search(query)
	suggestions := make([]AirportSuggestion, 0, len(matches))
	for _, match := range matches {
		suggestions = append(suggestions, AirportSuggestion{
			IATA:    match.Airport.IATA,
			Name:    match.Airport.Name,
			City:    match.City(),
			Country: match.Airport.Country,
		})
	}
	return suggestions, nil
}
