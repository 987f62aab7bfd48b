// Package directory holds the static airport reference set and a ranked
// fuzzy search over it. The set is read-only after process start, so
// concurrent queries need no coordination.
package directory

import (
	"strings"

	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/entity"
)

var byIATA = func() map[string]entity.Airport {
	index := make(map[string]entity.Airport, len(airports))
	for _, airport := range airports {
		index[airport.IATA] = airport
	}
	return index
}()

// Resolve looks up an airport by IATA code, case-insensitively.
func Resolve(code string) (entity.Airport, bool) {
	airport, ok := byIATA[strings.ToUpper(strings.TrimSpace(code))]
	return airport, ok
}

// IsMajorHub reports whether the code is on the fixed hub allow-list.
func IsMajorHub(code string) bool {
	_, ok := majorHubs[strings.ToUpper(code)]
	return ok
}
