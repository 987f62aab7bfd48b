package inbound

import (
	"context"

	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/usecase"
	"github.com/shandysiswandi/goflightfinder/internal/pkg/pkgrouter"
)

type uc interface {
	Search(ctx context.Context, in usecase.SearchInput) (*usecase.SearchOutput, error)
	Airports(ctx context.Context, query string) ([]usecase.AirportSuggestion, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/flights", end.Flights)
	r.GET("/airports", end.Airports)
}
