package inbound

type FlightsResponse struct {
	SearchCriteria SearchCriteriaResponse `json:"search_criteria"`
	Metadata       MetadataResponse       `json:"metadata"`
	Flights        []OfferResponse        `json:"flights"`
	ReturnFlights  []OfferResponse        `json:"return_flights,omitempty"`
}

type SearchCriteriaResponse struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date,omitempty"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children"`
	Infants       int    `json:"infants"`
}

type MetadataResponse struct {
	TotalResults int    `json:"total_results"`
	SearchTimeMs int64  `json:"search_time_ms"`
	CacheHit     bool   `json:"cache_hit"`
	LiveTracked  int    `json:"live_tracked"`
	RouteClass   string `json:"route_class"`
}

type OfferResponse struct {
	ID                string           `json:"id"`
	Airline           AirlineResponse  `json:"airline"`
	FlightNumber      string           `json:"flight_number"`
	Departure         OfferPoint       `json:"departure"`
	Arrival           OfferPoint       `json:"arrival"`
	Duration          DurationResponse `json:"duration"`
	Stops             int              `json:"stops"`
	Price             PriceResponse    `json:"price"`
	Aircraft          string           `json:"aircraft"`
	Amenities         []string         `json:"amenities"`
	Baggage           BaggageResponse  `json:"baggage"`
	OnTimePerformance int              `json:"on_time_performance"`
	CabinClasses      []string         `json:"cabin_classes"`
	Live              *LiveResponse    `json:"live,omitempty"`
}

type AirlineResponse struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type OfferPoint struct {
	Airport  string `json:"airport"`
	Time     string `json:"time"`
	Date     string `json:"date"`
	Terminal string `json:"terminal"`
}

type DurationResponse struct {
	TotalMinutes int    `json:"total_minutes"`
	Formatted    string `json:"formatted"`
}

type PriceResponse struct {
	Amount    int    `json:"amount"`
	Currency  string `json:"currency"`
	Formatted string `json:"formatted"`
}

type BaggageResponse struct {
	Checked       string `json:"checked"`
	CarryOn       string `json:"carry_on"`
	AdditionalFee string `json:"additional_fee"`
}

type LiveResponse struct {
	Altitude   float64 `json:"altitude"`
	Velocity   float64 `json:"velocity"`
	LastUpdate string  `json:"last_update"`
}

type AirportsResponse struct {
	Suggestions []AirportSuggestionResponse `json:"suggestions"`
}

type AirportSuggestionResponse struct {
	IATA    string `json:"iata"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}
