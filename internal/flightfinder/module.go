package flightfinder

import (
	"time"

	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/cache"
	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/inbound"
	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/outbound"
	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/usecase"
	"github.com/shandysiswandi/goflightfinder/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goflightfinder/internal/pkg/pkgrouter"
)

type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
}

func New(dep Dependency) error {
	cacheTTL := 60 * time.Second
	if ttlSeconds := dep.Config.GetInt("modules.flight-finder.cache.ttl_seconds"); ttlSeconds > 0 {
		cacheTTL = time.Duration(ttlSeconds) * time.Second
	}

	suggestTimeout := 3 * time.Second
	if timeoutMs := dep.Config.GetInt("modules.flight-finder.suggest.timeout_ms"); timeoutMs > 0 {
		suggestTimeout = time.Duration(timeoutMs) * time.Millisecond
	}
	suggest := outbound.NewSuggestClient(
		dep.Config.GetString("modules.flight-finder.suggest.base_url"),
		dep.Config.GetString("modules.flight-finder.suggest.api_key"),
		suggestTimeout,
	)

	// The live feed is optional: without a base URL the search runs
	// without live decoration.
	var live usecase.LiveFeed
	if baseURL := dep.Config.GetString("modules.flight-finder.live.base_url"); baseURL != "" {
		liveTimeout := 3 * time.Second
		if timeoutMs := dep.Config.GetInt("modules.flight-finder.live.timeout_ms"); timeoutMs > 0 {
			liveTimeout = time.Duration(timeoutMs) * time.Millisecond
		}
		live = outbound.NewLiveClient(baseURL, liveTimeout)
	}

	uc := usecase.New(usecase.Dependency{
		Suggest:  suggest,
		Live:     live,
		Cache:    cache.New(usecase.CloneSearchOutput),
		CacheTTL: cacheTTL,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
