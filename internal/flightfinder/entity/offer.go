package entity

type OfferPoint struct {
	Airport  string
	Time     string
	Date     string
	Terminal string
}

type Baggage struct {
	Checked       string
	CarryOn       string
	AdditionalFee string
}

// LiveData is the optional live-traffic decoration attached to at most a
// few offers at the front of a result set. It is purely additive.
type LiveData struct {
	Altitude   float64
	Velocity   float64
	LastUpdate string
}

// Offer is the engine's output unit. The ID is unique within one query's
// result set only. An offer is immutable after assembly except for the
// Live decoration.
type Offer struct {
	ID                string
	Airline           string
	AirlineCode       string
	FlightNumber      string
	Departure         OfferPoint
	Arrival           OfferPoint
	DurationMinutes   int
	Stops             int
	Price             int
	Currency          string
	Aircraft          string
	Amenities         []string
	Baggage           Baggage
	OnTimePerformance int
	CabinClasses      []string
	Live              *LiveData
}
