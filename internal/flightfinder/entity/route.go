package entity

type RouteClass string

const (
	RouteTrunk         RouteClass = "trunk"
	RouteMajor         RouteClass = "major"
	RouteRegional      RouteClass = "regional"
	RouteInternational RouteClass = "international"
	RouteLongHaul      RouteClass = "long_haul"
)

// International reports whether the class belongs to the international or
// long-haul carrier pool rather than the domestic one.
func (c RouteClass) International() bool {
	return c == RouteInternational || c == RouteLongHaul
}

// RouteProfile describes the synthetic schedule characteristics of an
// unordered origin/destination pair. FlightCount and the downstream price
// and timing ranges are always consistent with Class.
type RouteProfile struct {
	FlightCount int
	Class       RouteClass
	Direct      bool
	Popularity  string
	DistanceKm  int
}

// TimeSlot is one departure opportunity before carrier and fare
// assignment. Departure is a zero-padded "HH:MM" clock string.
type TimeSlot struct {
	Departure       string
	DelayMinutes    int
	PriceMultiplier float64
}

// AirlineProfile is one carrier in a route-class pool. MarketShare values
// within a pool sum to 1.0; FareMultiplier scales the class base fare.
type AirlineProfile struct {
	Name           string
	Code           string
	MarketShare    float64
	FareMultiplier float64
}
