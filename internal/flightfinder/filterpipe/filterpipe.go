// Package filterpipe re-filters and re-sorts an assembled offer set. It
// is a pure view transform: it never regenerates, mutates, or drops
// fields from the offers it is given.
package filterpipe

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/entity"
)

const (
	StopsAll     = "all"
	StopsNonstop = "nonstop"
	StopsOneStop = "1stop"
)

const (
	BucketEarlyMorning = "early-morning"
	BucketMorning      = "morning"
	BucketAfternoon    = "afternoon"
	BucketEvening      = "evening"
)

const (
	SortCheapest    = "cheapest"
	SortFastest     = "fastest"
	SortRecommended = "recommended"
)

// Options select which filters apply. Zero values disable a filter: an
// empty airline list keeps every carrier, a zero MaxPrice means no
// ceiling, an unknown bucket or sort mode is a no-op.
type Options struct {
	Stops           string
	Airlines        []string
	DepartureBucket string
	MaxPrice        int
	SortBy          string
}

// Apply runs all active filters and then one sort. Filters commute:
// membership of the result depends only on which filters are active,
// never on their order. The incoming order is preserved by filtering and
// by unknown sort modes.
func Apply(offers []entity.Offer, opts Options) []entity.Offer {
	filtered := make([]entity.Offer, 0, len(offers))
	airlines := airlineSet(opts.Airlines)

	for _, offer := range offers {
		if !matchStops(offer, opts.Stops) {
			continue
		}
		if len(airlines) > 0 {
			if _, ok := airlines[strings.ToLower(offer.Airline)]; !ok {
				continue
			}
		}
		if !matchBucket(offer, opts.DepartureBucket) {
			continue
		}
		if opts.MaxPrice > 0 && offer.Price > opts.MaxPrice {
			continue
		}
		filtered = append(filtered, offer)
	}

	sortOffers(filtered, opts.SortBy)
	return filtered
}

func matchStops(offer entity.Offer, mode string) bool {
	switch mode {
	case StopsNonstop:
		return offer.Stops == 0
	case StopsOneStop:
		return offer.Stops == 1
	default:
		return true
	}
}

func matchBucket(offer entity.Offer, bucket string) bool {
	if bucket == "" {
		return true
	}

	hour := departureHour(offer)
	switch bucket {
	case BucketEarlyMorning:
		return hour >= 0 && hour < 6
	case BucketMorning:
		return hour >= 6 && hour < 12
	case BucketAfternoon:
		return hour >= 12 && hour < 18
	case BucketEvening:
		return hour >= 18 && hour < 24
	default:
		return true
	}
}

func departureHour(offer entity.Offer) int {
	parts := strings.SplitN(offer.Departure.Time, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return -1
	}
	return hour
}

func sortOffers(offers []entity.Offer, mode string) {
	switch mode {
	case SortCheapest:
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].Price < offers[j].Price
		})
	case SortFastest:
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].DurationMinutes < offers[j].DurationMinutes
		})
	case SortRecommended:
		sort.SliceStable(offers, func(i, j int) bool {
			return recommendScore(offers[i]) < recommendScore(offers[j])
		})
	}
}

func recommendScore(offer entity.Offer) float64 {
	return float64(offer.Price)*0.7 + float64(offer.Stops)*100
}

func airlineSet(names []string) map[string]struct{} {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		trimmed := strings.ToLower(strings.TrimSpace(name))
		if trimmed != "" {
			set[trimmed] = struct{}{}
		}
	}
	return set
}
