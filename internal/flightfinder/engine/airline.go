package engine

import "github.com/shandysiswandi/goflightfinder/internal/flightfinder/entity"

// Two disjoint carrier pools. Market shares within each pool sum to 1.0;
// pool order matters because the weighted walk resolves ties by position.
var domesticAirlines = []entity.AirlineProfile{
	{Name: "IndiGo", Code: "6E", MarketShare: 0.6, FareMultiplier: 1.0},
	{Name: "SpiceJet", Code: "SG", MarketShare: 0.15, FareMultiplier: 0.9},
	{Name: "Air India", Code: "AI", MarketShare: 0.12, FareMultiplier: 1.1},
	{Name: "Vistara", Code: "UK", MarketShare: 0.08, FareMultiplier: 1.3},
	{Name: "GoFirst", Code: "G8", MarketShare: 0.05, FareMultiplier: 0.85},
}

var internationalAirlines = []entity.AirlineProfile{
	{Name: "Air India", Code: "AI", MarketShare: 0.2, FareMultiplier: 1.1},
	{Name: "IndiGo", Code: "6E", MarketShare: 0.15, FareMultiplier: 1.0},
	{Name: "Emirates", Code: "EK", MarketShare: 0.15, FareMultiplier: 1.4},
	{Name: "Qatar Airways", Code: "QR", MarketShare: 0.1, FareMultiplier: 1.35},
	{Name: "Singapore Airlines", Code: "SQ", MarketShare: 0.08, FareMultiplier: 1.5},
	{Name: "Lufthansa", Code: "LH", MarketShare: 0.07, FareMultiplier: 1.3},
	{Name: "British Airways", Code: "BA", MarketShare: 0.06, FareMultiplier: 1.25},
	{Name: "Thai Airways", Code: "TG", MarketShare: 0.05, FareMultiplier: 1.1},
	{Name: "Etihad Airways", Code: "EY", MarketShare: 0.04, FareMultiplier: 1.0},
	{Name: "Turkish Airlines", Code: "TK", MarketShare: 0.1, FareMultiplier: 1.05},
}

// baseFareRanges are the [min,max] fare ranges in INR per route class.
var baseFareRanges = map[entity.RouteClass][2]int{
	entity.RouteTrunk:         {4000, 15000},
	entity.RouteMajor:         {3500, 12000},
	entity.RouteRegional:      {3000, 8000},
	entity.RouteInternational: {15000, 45000},
	entity.RouteLongHaul:      {35000, 120000},
}

var fallbackFareRange = [2]int{5000, 25000}

// SelectAirline draws a carrier from the pool matching the route class,
// weighted by market share.
func SelectAirline(rnd Rand, class entity.RouteClass) entity.AirlineProfile {
	pool := domesticAirlines
	if class.International() {
		pool = internationalAirlines
	}
	return WeightedPick(rnd, pool, func(a entity.AirlineProfile) float64 {
		return a.MarketShare
	})
}

// Price computes a fare: a uniform base draw from the class range, scaled
// by the carrier's fare multiplier and the slot multiplier, floored.
func Price(rnd Rand, class entity.RouteClass, airline entity.AirlineProfile, slotMultiplier float64) int {
	bounds, ok := baseFareRanges[class]
	if !ok {
		bounds = fallbackFareRange
	}

	base := rnd.Intn(bounds[1]-bounds[0]) + bounds[0]

	multiplier := airline.FareMultiplier
	if multiplier == 0 {
		multiplier = 1.0
	}

	return int(float64(base) * multiplier * slotMultiplier)
}
