package filterpipe

import (
	"reflect"
	"testing"

	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/entity"
)

func fixtureOffers() []entity.Offer {
	return []entity.Offer{
		{ID: "a", Airline: "IndiGo", Price: 5500, Stops: 0, DurationMinutes: 90, Departure: entity.OfferPoint{Time: "06:30"}},
		{ID: "b", Airline: "Air India", Price: 6000, Stops: 1, DurationMinutes: 150, Departure: entity.OfferPoint{Time: "09:00"}},
		{ID: "c", Airline: "SpiceJet", Price: 5800, Stops: 0, DurationMinutes: 90, Departure: entity.OfferPoint{Time: "12:00"}},
		{ID: "d", Airline: "Vistara", Price: 4200, Stops: 1, DurationMinutes: 80, Departure: entity.OfferPoint{Time: "19:45"}},
		{ID: "e", Airline: "IndiGo", Price: 7100, Stops: 0, DurationMinutes: 200, Departure: entity.OfferPoint{Time: "02:15"}},
	}
}

func ids(offers []entity.Offer) []string {
	out := make([]string, 0, len(offers))
	for _, offer := range offers {
		out = append(out, offer.ID)
	}
	return out
}

func TestStopFilterNonstop(t *testing.T) {
	got := Apply(fixtureOffers(), Options{Stops: StopsNonstop})
	want := []string{"a", "c", "e"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}

	// Idempotent under re-application.
	again := Apply(got, Options{Stops: StopsNonstop})
	if !reflect.DeepEqual(ids(again), want) {
		t.Fatalf("re-application changed the result: %v", ids(again))
	}
}

func TestStopFilterAllIsNoop(t *testing.T) {
	got := Apply(fixtureOffers(), Options{Stops: StopsAll})
	if len(got) != 5 {
		t.Fatalf("expected all 5 offers, got %d", len(got))
	}
}

func TestAirlineFilterEmptyListKeepsEverything(t *testing.T) {
	got := Apply(fixtureOffers(), Options{Airlines: nil})
	if len(got) != 5 {
		t.Fatalf("expected all 5 offers, got %d", len(got))
	}
}

func TestAirlineFilterAllowList(t *testing.T) {
	got := Apply(fixtureOffers(), Options{Airlines: []string{"IndiGo", "Vistara"}})
	want := []string{"a", "d", "e"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestDepartureBuckets(t *testing.T) {
	cases := []struct {
		bucket string
		want   []string
	}{
		{BucketEarlyMorning, []string{"e"}},
		{BucketMorning, []string{"a", "b"}},
		{BucketAfternoon, []string{"c"}},
		{BucketEvening, []string{"d"}},
		{"lunchtime", []string{"a", "b", "c", "d", "e"}},
	}
	for _, tc := range cases {
		got := Apply(fixtureOffers(), Options{DepartureBucket: tc.bucket})
		if !reflect.DeepEqual(ids(got), tc.want) {
			t.Errorf("bucket %s: expected %v, got %v", tc.bucket, tc.want, ids(got))
		}
	}
}

func TestPriceCeiling(t *testing.T) {
	got := Apply(fixtureOffers(), Options{MaxPrice: 5800})
	want := []string{"a", "c", "d"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestFiltersCommute(t *testing.T) {
	// Apply stops+airline+price together versus one at a time; final
	// membership must agree.
	combined := Apply(fixtureOffers(), Options{
		Stops:    StopsNonstop,
		Airlines: []string{"IndiGo"},
		MaxPrice: 6000,
	})

	staged := Apply(fixtureOffers(), Options{MaxPrice: 6000})
	staged = Apply(staged, Options{Airlines: []string{"IndiGo"}})
	staged = Apply(staged, Options{Stops: StopsNonstop})

	if !reflect.DeepEqual(ids(combined), ids(staged)) {
		t.Fatalf("combined %v differs from staged %v", ids(combined), ids(staged))
	}
}

func TestSortCheapestTotalOrderAndIdempotent(t *testing.T) {
	got := Apply(fixtureOffers(), Options{SortBy: SortCheapest})
	for i := 1; i < len(got); i++ {
		if got[i].Price < got[i-1].Price {
			t.Fatalf("not ascending at %d: %d < %d", i, got[i].Price, got[i-1].Price)
		}
	}

	again := Apply(got, Options{SortBy: SortCheapest})
	if !reflect.DeepEqual(ids(again), ids(got)) {
		t.Fatalf("cheapest sort is not idempotent: %v vs %v", ids(again), ids(got))
	}
}

func TestSortFastest(t *testing.T) {
	got := Apply(fixtureOffers(), Options{SortBy: SortFastest})
	want := []string{"d", "a", "c", "b", "e"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestSortRecommendedWeighsStops(t *testing.T) {
	got := Apply(fixtureOffers(), Options{SortBy: SortRecommended})
	// d: 4200*0.7+100=3040, a: 3850, c: 4060, b: 4300, e: 4970
	want := []string{"d", "a", "c", "b", "e"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestUnknownSortKeepsIncomingOrder(t *testing.T) {
	got := Apply(fixtureOffers(), Options{SortBy: "bestest"})
	want := []string{"a", "b", "c", "d", "e"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected incoming order %v, got %v", want, ids(got))
	}
}
