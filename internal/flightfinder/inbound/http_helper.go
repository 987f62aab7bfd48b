package inbound

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/filterpipe"
	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/usecase"
	"github.com/shandysiswandi/goflightfinder/internal/pkg/pkgerror"
)

func parseSearchInput(r *http.Request) (usecase.SearchInput, error) {
	q := r.URL.Query()

	adults, err := parseCount(q, "adults", 1)
	if err != nil {
		return usecase.SearchInput{}, err
	}
	children, err := parseCount(q, "children", 0)
	if err != nil {
		return usecase.SearchInput{}, err
	}
	infants, err := parseCount(q, "infants", 0)
	if err != nil {
		return usecase.SearchInput{}, err
	}

	maxPrice := 0
	if value := strings.TrimSpace(firstNotEmpty(q.Get("max_price"), q.Get("maxPrice"))); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 0 {
			return usecase.SearchInput{}, pkgerror.NewBusiness("invalid max_price", pkgerror.CodeInvalidInput)
		}
		maxPrice = parsed
	}

	returnDate := strings.TrimSpace(firstNotEmpty(q.Get("returnDate"), q.Get("return_date")))
	tripType := strings.ToLower(strings.TrimSpace(firstNotEmpty(q.Get("tripType"), q.Get("trip_type"))))
	switch tripType {
	case "one-way", "oneway":
		returnDate = ""
	case "round-trip", "roundtrip":
		if returnDate == "" {
			return usecase.SearchInput{}, pkgerror.NewBusiness("returnDate is required for a round trip", pkgerror.CodeInvalidInput)
		}
	}

	return usecase.SearchInput{
		Origin:        strings.TrimSpace(q.Get("origin")),
		Destination:   strings.TrimSpace(q.Get("destination")),
		DepartureDate: strings.TrimSpace(firstNotEmpty(q.Get("departureDate"), q.Get("departure_date"))),
		ReturnDate:    returnDate,
		Adults:        adults,
		Children:      children,
		Infants:       infants,
		Filters: filterpipe.Options{
			Stops:           strings.ToLower(strings.TrimSpace(q.Get("stops"))),
			Airlines:        parseListParam(q, "airlines", "airline"),
			DepartureBucket: strings.ToLower(strings.TrimSpace(firstNotEmpty(q.Get("departure_time"), q.Get("departureTime")))),
			MaxPrice:        maxPrice,
			SortBy:          strings.ToLower(strings.TrimSpace(q.Get("sort"))),
		},
	}, nil
}

func parseCount(q url.Values, key string, fallback int) (int, error) {
	value := strings.TrimSpace(q.Get(key))
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, pkgerror.NewBusiness("invalid "+key, pkgerror.CodeInvalidInput)
	}
	return parsed, nil
}

func parseListParam(q url.Values, key, altKey string) []string {
	value := strings.TrimSpace(firstNotEmpty(q.Get(key), q.Get(altKey)))
	if value == "" {
		return nil
	}
	return strings.Split(value, ",")
}

func firstNotEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

// formatDuration always spells out both components ("2h 0m", "0h 45m").
func formatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// formatINR renders an amount with Indian digit grouping: the last three
// digits form one group, every group before that has two.
func formatINR(amount int) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	value := strconv.Itoa(amount)
	if len(value) > 3 {
		head := value[:len(value)-3]
		tail := value[len(value)-3:]
		for i := len(head) - 2; i > 0; i -= 2 {
			head = head[:i] + "," + head[i:]
		}
		value = head + "," + tail
	}

	if negative {
		return "-₹" + value
	}
	return "₹" + value
}
