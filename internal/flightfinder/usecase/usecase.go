package usecase

import (
	"context"
	"time"

	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/cache"
	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/engine"
	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/entity"
	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/outbound"
)

// Suggester serves airport suggestions from an external directory. A
// disabled suggester makes the usecase fall back to the local directory.
type Suggester interface {
	Enabled() bool
	Suggest(ctx context.Context, query string) ([]outbound.Suggestion, error)
}

// LiveFeed serves live state vectors around an airport. It is strictly
// best effort: a failing feed never fails a search.
type LiveFeed interface {
	States(ctx context.Context, airport entity.Airport) ([]outbound.LiveState, error)
}

type Dependency struct {
	Suggest  Suggester
	Live     LiveFeed
	Cache    *cache.Store[*SearchOutput]
	CacheTTL time.Duration
	// NewRand supplies the random source for one search. Defaults to
	// the crypto-backed source when nil.
	NewRand func() engine.Rand
	// Now is the clock used for date validation. Defaults to time.Now.
	Now func() time.Time
}

type Usecase struct {
	suggest  Suggester
	live     LiveFeed
	cache    *cache.Store[*SearchOutput]
	cacheTTL time.Duration
	newRand  func() engine.Rand
	now      func() time.Time
}

func New(dep Dependency) *Usecase {
	if dep.NewRand == nil {
		dep.NewRand = engine.NewSafeRand
	}
	if dep.Now == nil {
		dep.Now = time.Now
	}
	return &Usecase{
		suggest:  dep.Suggest,
		live:     dep.Live,
		cache:    dep.Cache,
		cacheTTL: dep.CacheTTL,
		newRand:  dep.NewRand,
		now:      dep.Now,
	}
}
