package entity

// Airport is one record of the static reference directory. Records are
// loaded once and never mutated.
type Airport struct {
	IATA    string
	ICAO    string
	Name    string
	City    string
	Country string
	Lat     float64
	Lon     float64
}
