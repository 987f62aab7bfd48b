package engine

import (
	"math"
	"strings"

	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/directory"
	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/entity"
)

// fallbackDistanceKm is used when either endpoint cannot be resolved;
// classification never fails on bad coordinates.
const fallbackDistanceKm = 2000

// routeOverrides are the explicitly authored routes. Classify checks both
// directions, so each pair appears once.
var routeOverrides = map[string]entity.RouteProfile{
	"DEL-BOM": {FlightCount: 18, Class: entity.RouteTrunk, Direct: true, Popularity: "very_high", DistanceKm: 1150},
	"DEL-BLR": {FlightCount: 15, Class: entity.RouteTrunk, Direct: true, Popularity: "high", DistanceKm: 1750},
	"BOM-BLR": {FlightCount: 12, Class: entity.RouteMajor, Direct: true, Popularity: "high", DistanceKm: 850},
	"DEL-MAA": {FlightCount: 10, Class: entity.RouteMajor, Direct: true, Popularity: "medium", DistanceKm: 1750},
	"DEL-CCU": {FlightCount: 8, Class: entity.RouteMajor, Direct: true, Popularity: "medium", DistanceKm: 1300},

	"DEL-PNQ": {FlightCount: 6, Class: entity.RouteRegional, Direct: true, Popularity: "medium", DistanceKm: 1100},
	"BOM-GOI": {FlightCount: 8, Class: entity.RouteRegional, Direct: true, Popularity: "medium", DistanceKm: 450},
	"BLR-COK": {FlightCount: 6, Class: entity.RouteRegional, Direct: true, Popularity: "medium", DistanceKm: 450},
	"DEL-JAI": {FlightCount: 5, Class: entity.RouteRegional, Direct: true, Popularity: "low", DistanceKm: 250},
	"DEL-DED": {FlightCount: 4, Class: entity.RouteRegional, Direct: true, Popularity: "low", DistanceKm: 250},

	"DEL-DXB": {FlightCount: 8, Class: entity.RouteInternational, Direct: true, Popularity: "high", DistanceKm: 2200},
	"BOM-DXB": {FlightCount: 6, Class: entity.RouteInternational, Direct: true, Popularity: "medium", DistanceKm: 1900},
	"DEL-SIN": {FlightCount: 4, Class: entity.RouteInternational, Direct: true, Popularity: "medium", DistanceKm: 4100},

	"DEL-LHR": {FlightCount: 3, Class: entity.RouteLongHaul, Direct: true, Popularity: "medium", DistanceKm: 6700},
	"BOM-LHR": {FlightCount: 2, Class: entity.RouteLongHaul, Direct: true, Popularity: "low", DistanceKm: 7200},
	"DEL-JFK": {FlightCount: 2, Class: entity.RouteLongHaul, Direct: false, Popularity: "low", DistanceKm: 11000},
}

var domesticAirports = map[string]struct{}{
	"DEL": {}, "BOM": {}, "BLR": {}, "MAA": {}, "CCU": {}, "HYD": {},
	"COK": {}, "GOI": {}, "PNQ": {}, "AMD": {}, "JAI": {}, "IXC": {},
	"LKO": {}, "PAT": {}, "TRV": {}, "IXB": {}, "GAU": {}, "BBI": {},
	"VNS": {}, "IXZ": {}, "DED": {}, "PGH": {}, "DHM": {}, "KUU": {},
	"SLV": {},
}

// Classify maps an origin/destination pair to a RouteProfile. The override
// table wins in either direction; everything else derives a profile from
// domesticity and great-circle distance. Classify is total and symmetric.
func Classify(origin, destination string) entity.RouteProfile {
	from := strings.ToUpper(strings.TrimSpace(origin))
	to := strings.ToUpper(strings.TrimSpace(destination))

	if profile, ok := routeOverrides[from+"-"+to]; ok {
		return profile
	}
	if profile, ok := routeOverrides[to+"-"+from]; ok {
		return profile
	}

	domestic := isDomestic(from, to)
	distance := estimateDistanceKm(from, to)

	class := entity.RouteRegional
	if !domestic {
		class = entity.RouteInternational
		if distance > 5000 {
			class = entity.RouteLongHaul
		}
	}

	flightCount := 4
	if domestic {
		flightCount = 6
	}

	return entity.RouteProfile{
		FlightCount: flightCount,
		Class:       class,
		Direct:      domestic || distance < 3000,
		Popularity:  "low",
		DistanceKm:  distance,
	}
}

func isDomestic(from, to string) bool {
	_, fromOK := domesticAirports[from]
	_, toOK := domesticAirports[to]
	return fromOK && toOK
}

func estimateDistanceKm(from, to string) int {
	fromAirport, fromOK := directory.Resolve(from)
	toAirport, toOK := directory.Resolve(to)
	if !fromOK || !toOK {
		return fallbackDistanceKm
	}
	return int(haversineKm(fromAirport.Lat, fromAirport.Lon, toAirport.Lat, toAirport.Lon))
}

// haversineKm is the great-circle distance between two coordinates.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371

	rad1 := lat1 * math.Pi / 180
	rad2 := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(rad1)*math.Cos(rad2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Floor(earthRadiusKm * c)
}
