package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/entity"
	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/filterpipe"
)

func buildCacheKey(in SearchInput) string {
	return fmt.Sprintf(
		"%s|%s|%s|%s|%d|%d|%d|%s",
		strings.ToUpper(in.Origin),
		strings.ToUpper(in.Destination),
		in.DepartureDate,
		in.ReturnDate,
		in.Adults,
		in.Children,
		in.Infants,
		formatFilters(in.Filters),
	)
}

func formatFilters(opts filterpipe.Options) string {
	airlines := make([]string, 0, len(opts.Airlines))
	for _, name := range opts.Airlines {
		trimmed := strings.ToLower(strings.TrimSpace(name))
		if trimmed != "" {
			airlines = append(airlines, trimmed)
		}
	}
	sort.Strings(airlines)

	return strings.Join([]string{
		strings.ToLower(opts.Stops),
		strings.Join(airlines, "+"),
		strings.ToLower(opts.DepartureBucket),
		fmt.Sprintf("%d", opts.MaxPrice),
		strings.ToLower(opts.SortBy),
	}, ",")
}

// CloneSearchOutput copies an output deep enough that callers cannot
// reach cached offers through the slices, though offers themselves are
// shared since they are treated as immutable after assembly.
func CloneSearchOutput(value *SearchOutput) *SearchOutput {
	if value == nil {
		return nil
	}
	clone := &SearchOutput{
		Criteria:     value.Criteria,
		Metadata:     value.Metadata,
		Offers:       make([]entity.Offer, len(value.Offers)),
		ReturnOffers: make([]entity.Offer, len(value.ReturnOffers)),
	}
	copy(clone.Offers, value.Offers)
	copy(clone.ReturnOffers, value.ReturnOffers)
	return clone
}
