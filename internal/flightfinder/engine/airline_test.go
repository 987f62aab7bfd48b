package engine

import (
	"testing"

	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/entity"
)

func TestWeightedPickWalksCumulativeWeights(t *testing.T) {
	items := []string{"a", "b", "c"}
	weights := map[string]float64{"a": 0.5, "b": 0.25, "c": 0.25}
	weightOf := func(s string) float64 { return weights[s] }

	cases := []struct {
		draw float64
		want string
	}{
		{0.0, "a"},
		{0.5, "a"},
		{0.51, "b"},
		{0.75, "b"},
		{0.76, "c"},
		{1.0, "c"},
	}
	for _, tc := range cases {
		rnd := &stubRand{floats: []float64{tc.draw}}
		if got := WeightedPick(rnd, items, weightOf); got != tc.want {
			t.Errorf("draw %f: expected %s, got %s", tc.draw, tc.want, got)
		}
	}
}

func TestWeightedPickRoundingMissReturnsFirst(t *testing.T) {
	items := []string{"a", "b"}
	// Weights sum below the draw, as float error can leave them.
	weightOf := func(string) float64 { return 0.4 }
	rnd := &stubRand{floats: []float64{0.99}}

	if got := WeightedPick(rnd, items, weightOf); got != "a" {
		t.Fatalf("expected first item on rounding miss, got %s", got)
	}
}

func TestSelectAirlinePoolsByClass(t *testing.T) {
	// Draw 0 picks the pool head in both cases.
	domestic := SelectAirline(&stubRand{floats: []float64{0}}, entity.RouteTrunk)
	if domestic.Name != "IndiGo" {
		t.Errorf("expected IndiGo heading the domestic pool, got %s", domestic.Name)
	}

	international := SelectAirline(&stubRand{floats: []float64{0}}, entity.RouteLongHaul)
	if international.Name != "Air India" {
		t.Errorf("expected Air India heading the international pool, got %s", international.Name)
	}
}

func TestPriceScalesBaseByMultipliers(t *testing.T) {
	// Intn(...)=0 pins the base at the class minimum.
	rnd := &stubRand{ints: []int{0}}
	airline := entity.AirlineProfile{Name: "Vistara", FareMultiplier: 1.3}

	got := Price(rnd, entity.RouteRegional, airline, 1.0)
	if got != 3900 { // 3000 * 1.3
		t.Fatalf("expected 3900, got %d", got)
	}
}

func TestPriceDefaultsUnlistedMultiplierToOne(t *testing.T) {
	rnd := &stubRand{ints: []int{0}}
	airline := entity.AirlineProfile{Name: "Charter Air"}

	got := Price(rnd, entity.RouteTrunk, airline, 1.0)
	if got != 4000 {
		t.Fatalf("expected 4000, got %d", got)
	}
}

func TestPriceUnknownClassUsesFallbackRange(t *testing.T) {
	rnd := &stubRand{ints: []int{0}}
	airline := entity.AirlineProfile{FareMultiplier: 1.0}

	got := Price(rnd, entity.RouteClass("charter"), airline, 1.0)
	if got != 5000 {
		t.Fatalf("expected fallback minimum 5000, got %d", got)
	}
}

func TestPriceStaysPositiveAcrossDraws(t *testing.T) {
	rnd := seededRand(7)
	for i := 0; i < 200; i++ {
		airline := SelectAirline(rnd, entity.RouteLongHaul)
		price := Price(rnd, entity.RouteLongHaul, airline, 0.8)
		if price <= 0 {
			t.Fatalf("draw %d: non-positive price %d", i, price)
		}
	}
}
