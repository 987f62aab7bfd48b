package engine

import (
	"fmt"
	"sort"

	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/entity"
)

var aircraftPools = map[entity.RouteClass][]string{
	entity.RouteRegional:      {"ATR 72", "Embraer E190", "Bombardier Q400"},
	entity.RouteInternational: {"Airbus A330", "Boeing 787", "Airbus A350", "Boeing 777"},
	entity.RouteLongHaul:      {"Boeing 777-300ER", "Airbus A350-900", "Boeing 787-9", "Airbus A380"},
}

// trunk and major routes fly the standard narrow-body fleet.
var defaultAircraftPool = []string{"Airbus A320", "Airbus A321", "Boeing 737-800", "Boeing 737 MAX"}

var (
	basicAmenities = []string{"Complimentary snacks", "Water", "Entertainment system"}

	premiumAmenities = []string{
		"Complimentary meal", "Beverages", "WiFi",
		"Entertainment system", "Extra legroom",
	}

	luxuryAmenities = []string{
		"Gourmet dining", "Premium beverages", "WiFi",
		"Lie-flat seats", "Priority boarding", "Lounge access",
	}
)

// Full-service domestic carriers upgraded to the premium amenity tier.
var premiumDomesticCarriers = map[string]struct{}{
	"Vistara":   {},
	"Air India": {},
}

var (
	domesticBaggage      = entity.Baggage{Checked: "15kg", CarryOn: "7kg", AdditionalFee: "Yes"}
	internationalBaggage = entity.Baggage{Checked: "23kg", CarryOn: "7kg", AdditionalFee: "No"}
)

// airportTerminals maps airport -> airline code -> terminal; everything
// not listed departs from T1.
var airportTerminals = map[string]map[string]string{
	"DEL": {"6E": "T1", "SG": "T1", "AI": "T3", "UK": "T3", "EK": "T3"},
	"BOM": {"6E": "T1", "SG": "T1", "AI": "T2", "UK": "T2", "EK": "T2"},
	"BLR": {"6E": "T1", "SG": "T1", "AI": "T1", "UK": "T1", "EK": "T1"},
}

var cabinClassLabels = []string{"Economy", "Premium Economy", "Business", "First"}

// AssembleInput carries the query context an offer batch is built for.
type AssembleInput struct {
	Origin        string
	Destination   string
	DepartureDate string
	Currency      string
}

// Assemble builds one complete offer per slot and returns the batch
// sorted ascending by price. Offers are never partially built: every
// field is populated before the offer joins the result.
func Assemble(rnd Rand, in AssembleInput, profile entity.RouteProfile, slots []entity.TimeSlot) []entity.Offer {
	offers := make([]entity.Offer, 0, len(slots))

	for i, slot := range slots {
		airline := SelectAirline(rnd, profile.Class)
		duration := flightDurationMinutes(rnd, profile)
		arrival := addMinutesToClock(slot.Departure, duration+slot.DelayMinutes)

		stops := 0
		if !profile.Direct && rnd.Float64() > 0.7 {
			stops = 1
		}

		offers = append(offers, entity.Offer{
			ID:           fmt.Sprintf("flight-%s-%s-%d", in.Origin, in.Destination, i),
			Airline:      airline.Name,
			AirlineCode:  airline.Code,
			FlightNumber: fmt.Sprintf("%s%d", airline.Code, rnd.Intn(900)+100),
			Departure: entity.OfferPoint{
				Airport:  in.Origin,
				Time:     slot.Departure,
				Date:     in.DepartureDate,
				Terminal: terminalFor(in.Origin, airline.Code),
			},
			Arrival: entity.OfferPoint{
				Airport:  in.Destination,
				Time:     arrival,
				Date:     in.DepartureDate,
				Terminal: terminalFor(in.Destination, airline.Code),
			},
			DurationMinutes:   duration,
			Stops:             stops,
			Price:             Price(rnd, profile.Class, airline, slot.PriceMultiplier),
			Currency:          in.Currency,
			Aircraft:          selectAircraft(rnd, profile.Class),
			Amenities:         amenitiesFor(airline, profile.Class),
			Baggage:           baggageFor(profile.Class),
			OnTimePerformance: rnd.Intn(20) + 75,
			CabinClasses:      cabinClassLabels,
		})
	}

	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].Price < offers[j].Price
	})
	return offers
}

// flightDurationMinutes estimates block time from distance at a cruise
// factor of 15 km/min plus taxi time, with bounded jitter and a floor of
// one hour.
func flightDurationMinutes(rnd Rand, profile entity.RouteProfile) int {
	taxi := 30
	if profile.Class == entity.RouteLongHaul {
		taxi = 45
	}

	duration := profile.DistanceKm/15 + taxi + rnd.Intn(30) - 15
	if duration < 60 {
		return 60
	}
	return duration
}

func selectAircraft(rnd Rand, class entity.RouteClass) string {
	pool, ok := aircraftPools[class]
	if !ok {
		pool = defaultAircraftPool
	}
	return pool[rnd.Intn(len(pool))]
}

func amenitiesFor(airline entity.AirlineProfile, class entity.RouteClass) []string {
	switch {
	case class == entity.RouteLongHaul:
		return luxuryAmenities
	case class == entity.RouteInternational:
		return premiumAmenities
	default:
		if _, ok := premiumDomesticCarriers[airline.Name]; ok {
			return premiumAmenities
		}
		return basicAmenities
	}
}

func baggageFor(class entity.RouteClass) entity.Baggage {
	if class.International() {
		return internationalBaggage
	}
	return domesticBaggage
}

func terminalFor(airport, airlineCode string) string {
	if terminals, ok := airportTerminals[airport]; ok {
		if terminal, ok := terminals[airlineCode]; ok {
			return terminal
		}
	}
	return "T1"
}
