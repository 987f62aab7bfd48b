// Package cache holds an in-memory TTL store for computed flight results.
// Values are cloned on read so callers can mutate what they get back
// without corrupting the cached copy.
package cache

import (
	"sync"
	"time"
)

// sweepEvery controls how often a Set pays for a full expiry sweep.
// Expired entries are otherwise only reclaimed when their key is read.
const sweepEvery = 64

type item[T any] struct {
	value    T
	deadline time.Time
}

type Store[T any] struct {
	mu    sync.Mutex
	items map[string]item[T]
	clone func(T) T
	now   func() time.Time
	sets  int
}

// New creates an empty store. The clone function guards cached values
// against caller mutation; pass nil for value types that need no copy.
func New[T any](clone func(T) T) *Store[T] {
	return &Store[T]{
		items: make(map[string]item[T]),
		clone: clone,
		now:   time.Now,
	}
}

// Get returns the cached value for key, or false if the key is absent
// or its TTL has passed. An expired entry is deleted on the spot.
func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[key]
	if !ok {
		var zero T
		return zero, false
	}
	if !s.now().Before(it.deadline) {
		delete(s.items, key)
		var zero T
		return zero, false
	}
	if s.clone != nil {
		return s.clone(it.value), true
	}
	return it.value, true
}

// Set stores value under key for the given TTL, replacing any previous
// entry. A non-positive TTL removes the key.
func (s *Store[T]) Set(key string, value T, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ttl <= 0 {
		delete(s.items, key)
		return
	}

	if s.clone != nil {
		value = s.clone(value)
	}
	s.items[key] = item[T]{value: value, deadline: s.now().Add(ttl)}

	s.sets++
	if s.sets%sweepEvery == 0 {
		s.sweepLocked()
	}
}

// Len reports the number of entries, expired ones included until they
// are swept or read.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store[T]) sweepLocked() {
	now := s.now()
	for key, it := range s.items {
		if !now.Before(it.deadline) {
			delete(s.items, key)
		}
	}
}
