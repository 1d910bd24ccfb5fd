package client

import (
	"context"
	"net/url"
	"strconv"
	"sync"
)

// Filter narrows a collection fetch. The zero value requests the full
// collection in its backend-defined order.
type Filter struct {
	FeaturedOnly bool
	Limit        int
}

func (f Filter) query() url.Values {
	query := url.Values{}
	if f.FeaturedOnly {
		query.Set("featured", "true")
	}
	if f.Limit > 0 {
		query.Set("limit", strconv.Itoa(f.Limit))
	}
	return query
}

// collection is the shared core of every entity store: the item slice, the
// loading flag and the error string, with fetch-replaces-wholesale
// semantics. Concurrent fetches are permitted; the last one to resolve wins,
// which can surface a stale result when responses arrive out of order.
type collection[T any] struct {
	fetchFn func(ctx context.Context, f Filter) ([]T, error)

	mu      sync.Mutex
	items   []T
	loading int
	err     string
}

// Items returns a copy of the current collection, empty until the first
// successful fetch.
func (s *collection[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Loading reports whether any fetch is in flight.
func (s *collection[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading > 0
}

// Err returns the last operation's error message, empty when the last
// operation succeeded.
func (s *collection[T]) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Fetch replaces the collection wholesale on success. On failure the
// previous items survive and Err carries the backend's message, or the
// generic connectivity message. Loading always terminates.
func (s *collection[T]) Fetch(ctx context.Context, f Filter) error {
	s.mu.Lock()
	s.loading++
	s.mu.Unlock()

	items, err := s.fetchFn(ctx, f)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading--

	if err != nil {
		s.err = errorMessage(err)
		return err
	}

	if items == nil {
		items = []T{}
	}
	s.items = items
	s.err = ""
	return nil
}

// fail records an error from a mutation without touching the items.
func (s *collection[T]) fail(err error) error {
	s.mu.Lock()
	s.err = errorMessage(err)
	s.mu.Unlock()
	return err
}

// mutate runs a write operation and, on success, refetches the full
// collection: consistency over efficiency, no optimistic local edit.
func (s *collection[T]) mutate(ctx context.Context, op func() error) error {
	if err := op(); err != nil {
		return s.fail(err)
	}
	return s.Fetch(ctx, Filter{})
}
