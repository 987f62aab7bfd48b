package directory

import (
	"sort"
	"strings"

	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/entity"
)

const maxResults = 12

// aliasScore outranks every scored match except an exact IATA hit.
const aliasScore = 950

// Match is one search result: the matched airport, its relevance score,
// and an optional display city used when the match came through a city
// alias rather than the airport's own city.
type Match struct {
	Airport     entity.Airport
	Score       int
	DisplayCity string
}

// City returns the city to display for this match.
func (m Match) City() string {
	if m.DisplayCity != "" {
		return m.DisplayCity
	}
	return m.Airport.City
}

// Search ranks the directory against a free-text query. Queries shorter
// than two characters return nothing. Alias hits are injected at a fixed
// high score with the searched city as display city; every record is
// then scored and the merged result is sorted descending by score,
// ties keeping directory order, and truncated to twelve entries.
// Search is pure.
func Search(query string) []Match {
	trimmed := strings.TrimSpace(query)
	if len(trimmed) < 2 {
		return nil
	}
	lower := strings.ToLower(trimmed)

	matches := make([]Match, 0, maxResults)
	for _, code := range cityAliases[lower] {
		if airport, ok := byIATA[code]; ok {
			matches = append(matches, Match{
				Airport:     airport,
				Score:       aliasScore,
				DisplayCity: titleCase(trimmed),
			})
		}
	}

	for _, airport := range airports {
		if score := scoreAirport(airport, lower); score > 0 {
			matches = append(matches, Match{Airport: airport, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

func scoreAirport(airport entity.Airport, query string) int {
	iata := strings.ToLower(airport.IATA)
	city := strings.ToLower(airport.City)
	name := strings.ToLower(airport.Name)
	country := strings.ToLower(airport.Country)

	score := 0
	if iata == query {
		score += 1000
	}
	if city == query {
		score += 900
	}
	if strings.HasPrefix(city, query) {
		score += 100
	}
	if strings.HasPrefix(name, query) {
		score += 80
	}
	if strings.HasPrefix(iata, query) {
		score += 70
	}
	if strings.Contains(city, query) {
		score += 50
	}
	if strings.Contains(name, query) {
		score += 30
	}
	if strings.Contains(country, query) {
		score += 20
	}
	// Hubs get the bonus regardless of text matches, so a query that
	// matches nothing still surfaces the hub list.
	if IsMajorHub(airport.IATA) {
		score += 10
	}
	return score
}

func titleCase(value string) string {
	words := strings.Fields(strings.ToLower(value))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
