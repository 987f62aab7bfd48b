package engine

import (
	"strings"
	"testing"

	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/entity"
)

func assembleFor(t *testing.T, seed int64, profile entity.RouteProfile) []entity.Offer {
	t.Helper()
	rnd := seededRand(seed)
	slots := GenerateTimeSlots(rnd, profile.FlightCount, profile.Class)
	in := AssembleInput{Origin: "DEL", Destination: "DED", DepartureDate: "2026-09-15", Currency: "INR"}
	return Assemble(rnd, in, profile, slots)
}

func TestAssembleProducesOneOfferPerSlot(t *testing.T) {
	profile := Classify("DEL", "DED")
	offers := assembleFor(t, 1, profile)

	if len(offers) != profile.FlightCount {
		t.Fatalf("expected %d offers, got %d", profile.FlightCount, len(offers))
	}
	for i, offer := range offers {
		if offer.Price <= 0 {
			t.Errorf("offer %d: non-positive price %d", i, offer.Price)
		}
		if offer.DurationMinutes < 60 {
			t.Errorf("offer %d: duration %d below floor", i, offer.DurationMinutes)
		}
		if offer.Stops != 0 {
			t.Errorf("offer %d: direct route produced %d stops", i, offer.Stops)
		}
		if offer.Airline == "" || offer.AirlineCode == "" || offer.Aircraft == "" {
			t.Errorf("offer %d: partially built offer %+v", i, offer)
		}
		if !strings.HasPrefix(offer.FlightNumber, offer.AirlineCode) {
			t.Errorf("offer %d: flight number %s missing carrier prefix %s", i, offer.FlightNumber, offer.AirlineCode)
		}
		if offer.OnTimePerformance < 75 || offer.OnTimePerformance > 94 {
			t.Errorf("offer %d: on-time %d outside [75,94]", i, offer.OnTimePerformance)
		}
	}
}

func TestAssembleSortsAscendingByPrice(t *testing.T) {
	offers := assembleFor(t, 2, Classify("DEL", "BOM"))
	for i := 1; i < len(offers); i++ {
		if offers[i].Price < offers[i-1].Price {
			t.Fatalf("offer %d price %d below previous %d", i, offers[i].Price, offers[i-1].Price)
		}
	}
}

func TestAssembleOfferIDsUniqueWithinBatch(t *testing.T) {
	offers := assembleFor(t, 3, Classify("DEL", "BOM"))
	seen := map[string]struct{}{}
	for _, offer := range offers {
		if _, dup := seen[offer.ID]; dup {
			t.Fatalf("duplicate offer id %s", offer.ID)
		}
		seen[offer.ID] = struct{}{}
	}
}

func TestAssembleIndirectRouteStops(t *testing.T) {
	profile := Classify("DEL", "JFK")
	if profile.Direct {
		t.Fatal("expected DEL-JFK to be indirect")
	}

	sawStop := false
	for seed := int64(0); seed < 40; seed++ {
		for _, offer := range assembleFor(t, seed, profile) {
			if offer.Stops != 0 && offer.Stops != 1 {
				t.Fatalf("stops must be 0 or 1, got %d", offer.Stops)
			}
			if offer.Stops == 1 {
				sawStop = true
			}
		}
	}
	if !sawStop {
		t.Error("expected at least one 1-stop offer across 40 seeds")
	}
}

func TestAssembleAmenityTiers(t *testing.T) {
	longHaul := assembleFor(t, 4, Classify("DEL", "LHR"))
	for _, offer := range longHaul {
		if offer.Amenities[0] != "Gourmet dining" {
			t.Fatalf("long-haul offers get the luxury tier, got %v", offer.Amenities)
		}
		if offer.Baggage.Checked != "23kg" {
			t.Fatalf("long-haul offers get international baggage, got %+v", offer.Baggage)
		}
	}

	regional := assembleFor(t, 5, Classify("HYD", "PAT"))
	for _, offer := range regional {
		premium := offer.Airline == "Vistara" || offer.Airline == "Air India"
		if premium && offer.Amenities[0] != "Complimentary meal" {
			t.Fatalf("%s should be upgraded to premium, got %v", offer.Airline, offer.Amenities)
		}
		if !premium && offer.Amenities[0] != "Complimentary snacks" {
			t.Fatalf("%s should stay basic, got %v", offer.Airline, offer.Amenities)
		}
		if offer.Baggage.Checked != "15kg" {
			t.Fatalf("domestic offers get domestic baggage, got %+v", offer.Baggage)
		}
	}
}

func TestAssembleTerminalLookup(t *testing.T) {
	rnd := &stubRand{
		// pool draw 0 -> IndiGo; then flight number, duration jitter,
		// price base, aircraft index, on-time all zero.
		ints:   []int{0, 0, 0, 0, 0},
		floats: []float64{0, 0},
	}
	in := AssembleInput{Origin: "DEL", Destination: "HYD", DepartureDate: "2026-09-15", Currency: "INR"}
	profile := entity.RouteProfile{FlightCount: 1, Class: entity.RouteRegional, Direct: true, DistanceKm: 1200}
	slots := []entity.TimeSlot{{Departure: "07:00", DelayMinutes: 0, PriceMultiplier: 1.0}}

	offers := Assemble(rnd, in, profile, slots)
	if len(offers) != 1 {
		t.Fatalf("expected 1 offer, got %d", len(offers))
	}
	if offers[0].Departure.Terminal != "T1" {
		t.Errorf("IndiGo departs DEL from T1, got %s", offers[0].Departure.Terminal)
	}
	if offers[0].Arrival.Terminal != "T1" {
		t.Errorf("unlisted airports default to T1, got %s", offers[0].Arrival.Terminal)
	}
}
