package inbound

import (
	"context"
	"net/http"
	"strings"

	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/entity"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Flights(ctx context.Context, r *http.Request) (any, error) {
	input, err := parseSearchInput(r)
	if err != nil {
		return nil, err
	}

	output, err := h.uc.Search(ctx, input)
	if err != nil {
		return nil, err
	}

	return FlightsResponse{
		SearchCriteria: SearchCriteriaResponse{
			Origin:        output.Criteria.Origin,
			Destination:   output.Criteria.Destination,
			DepartureDate: output.Criteria.DepartureDate,
			ReturnDate:    output.Criteria.ReturnDate,
			Adults:        output.Criteria.Adults,
			Children:      output.Criteria.Children,
			Infants:       output.Criteria.Infants,
		},
		Metadata: MetadataResponse{
			TotalResults: output.Metadata.TotalResults,
			SearchTimeMs: output.Metadata.SearchTimeMs,
			CacheHit:     output.Metadata.CacheHit,
			LiveTracked:  output.Metadata.LiveTracked,
			RouteClass:   output.Metadata.RouteClass,
		},
		Flights:       mapOfferResponses(output.Offers),
		ReturnFlights: mapOfferResponses(output.ReturnOffers),
	}, nil
}

func (h *HTTPEndpoint) Airports(ctx context.Context, r *http.Request) (any, error) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	suggestions, err := h.uc.Airports(ctx, query)
	if err != nil {
		return nil, err
	}

	resp := AirportsResponse{Suggestions: make([]AirportSuggestionResponse, 0, len(suggestions))}
	for _, suggestion := range suggestions {
		resp.Suggestions = append(resp.Suggestions, AirportSuggestionResponse{
			IATA:    suggestion.IATA,
			Name:    suggestion.Name,
			City:    suggestion.City,
			Country: suggestion.Country,
		})
	}
	return resp, nil
}

func mapOfferResponses(offers []entity.Offer) []OfferResponse {
	resp := make([]OfferResponse, 0, len(offers))
	for _, offer := range offers {
		resp = append(resp, OfferResponse{
			ID:           offer.ID,
			Airline:      AirlineResponse{Name: offer.Airline, Code: offer.AirlineCode},
			FlightNumber: offer.FlightNumber,
			Departure:    mapOfferPoint(offer.Departure),
			Arrival:      mapOfferPoint(offer.Arrival),
			Duration: DurationResponse{
				TotalMinutes: offer.DurationMinutes,
				Formatted:    formatDuration(offer.DurationMinutes),
			},
			Stops: offer.Stops,
			Price: PriceResponse{
				Amount:    offer.Price,
				Currency:  offer.Currency,
				Formatted: formatINR(offer.Price),
			},
			Aircraft:          offer.Aircraft,
			Amenities:         append([]string{}, offer.Amenities...),
			Baggage:           BaggageResponse{Checked: offer.Baggage.Checked, CarryOn: offer.Baggage.CarryOn, AdditionalFee: offer.Baggage.AdditionalFee},
			OnTimePerformance: offer.OnTimePerformance,
			CabinClasses:      append([]string{}, offer.CabinClasses...),
			Live:              mapLiveResponse(offer.Live),
		})
	}
	return resp
}

func mapOfferPoint(point entity.OfferPoint) OfferPoint {
	return OfferPoint{
		Airport:  point.Airport,
		Time:     point.Time,
		Date:     point.Date,
		Terminal: point.Terminal,
	}
}

func mapLiveResponse(live *entity.LiveData) *LiveResponse {
	if live == nil {
		return nil
	}
	return &LiveResponse{
		Altitude:   live.Altitude,
		Velocity:   live.Velocity,
		LastUpdate: live.LastUpdate,
	}
}
