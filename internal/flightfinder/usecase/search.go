package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/directory"
	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/engine"
	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/entity"
	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/filterpipe"
	"github.com/shandysiswandi/goflightfinder/internal/pkg/pkgerror"
)

const (
	dateLayout = "2006-01-02"
	// maxLiveDecorated caps how many offers at the front of the
	// outbound leg carry live tracking data.
	maxLiveDecorated = 3
)

type SearchInput struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        int
	Children      int
	Infants       int
	Filters       filterpipe.Options
}

type SearchOutput struct {
	Criteria     SearchCriteria
	Metadata     SearchMetadata
	Offers       []entity.Offer
	ReturnOffers []entity.Offer
}

type SearchCriteria struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        int
	Children      int
	Infants       int
}

type SearchMetadata struct {
	TotalResults int
	SearchTimeMs int64
	CacheHit     bool
	LiveTracked  int
	RouteClass   string
}

// Search synthesizes, filters, and sorts the offer set for one query.
// Results are cached per full input; a cache hit is reported in the
// metadata. Identical queries outside the cache window produce different
// offers because the synthesis is randomized.
func (u *Usecase) Search(ctx context.Context, in SearchInput) (*SearchOutput, error) {
	start := time.Now()

	origin, destination, err := u.validate(in)
	if err != nil {
		return nil, err
	}

	cacheKey := buildCacheKey(in)
	if cached, ok := u.cache.Get(cacheKey); ok {
		cached.Metadata.CacheHit = true
		cached.Metadata.LiveTracked = u.decorateLive(ctx, origin, cached.Offers)
		cached.Metadata.SearchTimeMs = time.Since(start).Milliseconds()
		return cached, nil
	}

	rnd := u.newRand()

	offers, profile := generateOffers(rnd, origin.IATA, destination.IATA, in.DepartureDate)
	offers = filterpipe.Apply(offers, in.Filters)

	returnOffers := []entity.Offer{}
	if in.ReturnDate != "" {
		returnOffers, _ = generateOffers(rnd, destination.IATA, origin.IATA, in.ReturnDate)
		returnOffers = filterpipe.Apply(returnOffers, in.Filters)
	}

	output := &SearchOutput{
		Criteria: SearchCriteria{
			Origin:        origin.IATA,
			Destination:   destination.IATA,
			DepartureDate: in.DepartureDate,
			ReturnDate:    in.ReturnDate,
			Adults:        in.Adults,
			Children:      in.Children,
			Infants:       in.Infants,
		},
		Metadata: SearchMetadata{
			TotalResults: len(offers) + len(returnOffers),
			SearchTimeMs: time.Since(start).Milliseconds(),
			CacheHit:     false,
			RouteClass:   string(profile.Class),
		},
		Offers:       offers,
		ReturnOffers: returnOffers,
	}

	// The cached copy stays undecorated: live data is re-fetched per
	// response so cache hits never replay stale tracking.
	u.cache.Set(cacheKey, output, u.cacheTTL)
	output.Metadata.LiveTracked = u.decorateLive(ctx, origin, output.Offers)

	return output, nil
}

func generateOffers(rnd engine.Rand, origin, destination, date string) ([]entity.Offer, entity.RouteProfile) {
	profile := engine.Classify(origin, destination)
	slots := engine.GenerateTimeSlots(rnd, profile.FlightCount, profile.Class)
	offers := engine.Assemble(rnd, engine.AssembleInput{
		Origin:        origin,
		Destination:   destination,
		DepartureDate: date,
		Currency:      "INR",
	}, profile, slots)
	return offers, profile
}

func (u *Usecase) validate(in SearchInput) (entity.Airport, entity.Airport, error) {
	var origin, destination entity.Airport

	if in.Origin == "" {
		return origin, destination, pkgerror.NewBusiness("origin is required", pkgerror.CodeInvalidInput)
	}
	if in.Destination == "" {
		return origin, destination, pkgerror.NewBusiness("destination is required", pkgerror.CodeInvalidInput)
	}

	origin, ok := directory.Resolve(in.Origin)
	if !ok {
		message := fmt.Sprintf("unknown origin airport %q", in.Origin)
		return origin, destination, pkgerror.NewBusiness(message, pkgerror.CodeNotFound)
	}
	destination, ok = directory.Resolve(in.Destination)
	if !ok {
		message := fmt.Sprintf("unknown destination airport %q", in.Destination)
		return origin, destination, pkgerror.NewBusiness(message, pkgerror.CodeNotFound)
	}
	if origin.IATA == destination.IATA {
		return origin, destination, pkgerror.NewBusiness("origin and destination must differ", pkgerror.CodeInvalidInput)
	}

	departure, err := time.Parse(dateLayout, in.DepartureDate)
	if err != nil {
		return origin, destination, pkgerror.NewBusiness("departure date must be in YYYY-MM-DD format", pkgerror.CodeInvalidInput)
	}
	today := u.now().Format(dateLayout)
	if in.DepartureDate < today {
		return origin, destination, pkgerror.NewBusiness("departure date must not be in the past", pkgerror.CodeInvalidInput)
	}

	if in.ReturnDate != "" {
		returnDate, err := time.Parse(dateLayout, in.ReturnDate)
		if err != nil {
			return origin, destination, pkgerror.NewBusiness("return date must be in YYYY-MM-DD format", pkgerror.CodeInvalidInput)
		}
		if returnDate.Before(departure) {
			return origin, destination, pkgerror.NewBusiness("return date must not be before departure date", pkgerror.CodeInvalidInput)
		}
	}

	if in.Adults < 1 {
		return origin, destination, pkgerror.NewBusiness("at least one adult traveller is required", pkgerror.CodeInvalidInput)
	}
	if in.Children < 0 || in.Infants < 0 {
		return origin, destination, pkgerror.NewBusiness("traveller counts must not be negative", pkgerror.CodeInvalidInput)
	}
	if in.Infants > in.Adults {
		return origin, destination, pkgerror.NewBusiness("each infant must be accompanied by an adult", pkgerror.CodeInvalidInput)
	}

	return origin, destination, nil
}

// decorateLive attaches live state vectors near the origin to the first
// few offers. The decoration is additive only: failures are logged and
// the search proceeds untouched.
func (u *Usecase) decorateLive(ctx context.Context, origin entity.Airport, offers []entity.Offer) int {
	if u.live == nil || len(offers) == 0 {
		return 0
	}

	states, err := u.live.States(ctx, origin)
	if err != nil {
		slog.DebugContext(ctx, "live traffic lookup failed", "airport", origin.IATA, "error", err)
		return 0
	}

	count := min(maxLiveDecorated, len(offers), len(states))
	updated := u.now().UTC().Format(time.RFC3339)
	for i := 0; i < count; i++ {
		offers[i].Live = &entity.LiveData{
			Altitude:   states[i].Altitude,
			Velocity:   states[i].Velocity,
			LastUpdate: updated,
		}
	}
	return count
}
