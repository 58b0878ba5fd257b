// Package flightset holds the canonical result set of a flight search and
// derives a filtered view from it. The view is always recomputable from the
// offers and the current filters; it carries no state of its own.
package flightset

import (
	"math"
	"slices"
	"sync"
)

// Offer is a single priced flight itinerary, flattened from the upstream
// offer structure to the fields filtering and sorting care about.
type Offer struct {
	ID       string  `json:"id"`
	Airline  string  `json:"airline"`
	Price    float64 `json:"price"`
	Stops    int     `json:"stops"`
	Duration string  `json:"duration"`
}

// Filters restrict which offers appear in the derived view. An empty Stops
// or Airlines slice means no restriction on that dimension.
type Filters struct {
	MaxPrice float64
	Stops    []int
	Airlines []string
}

// FilterUpdate is a partial change to Filters. Nil fields leave the
// corresponding filter untouched; a non-nil empty slice clears it.
type FilterUpdate struct {
	MaxPrice *float64
	Stops    []int
	Airlines []string
}

// Store owns the full offer set and the filtered view derived from it.
// All methods are safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	offers   []Offer
	filters  Filters
	filtered []Offer
}

// NewStore returns an empty store with unrestricted filters.
func NewStore() *Store {
	return &Store{
		filters: Filters{MaxPrice: math.Inf(1)},
	}
}

// SetResults replaces the offer set wholesale and recomputes the filtered
// view against the current filters. A new search supersedes the previous
// one entirely; there is no merging.
func (s *Store) SetResults(offers []Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.offers = slices.Clone(offers)
	s.filtered = applyFilters(s.offers, s.filters)
}

// UpdateFilters merges the partial update into the current filters and
// recomputes the filtered view with a full pass over the offer set.
func (s *Store) UpdateFilters(u FilterUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.MaxPrice != nil {
		s.filters.MaxPrice = *u.MaxPrice
	}
	if u.Stops != nil {
		s.filters.Stops = slices.Clone(u.Stops)
	}
	if u.Airlines != nil {
		s.filters.Airlines = slices.Clone(u.Airlines)
	}

	s.filtered = applyFilters(s.offers, s.filters)
}

// Filtered returns a copy of the current filtered view.
func (s *Store) Filtered() []Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.filtered)
}

// Results returns a copy of the full offer set.
func (s *Store) Results() []Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.offers)
}

// Filters returns the current filter configuration.
func (s *Store) Filters() Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Filters{
		MaxPrice: s.filters.MaxPrice,
		Stops:    slices.Clone(s.filters.Stops),
		Airlines: slices.Clone(s.filters.Airlines),
	}
}

// applyFilters keeps offers matching every clause: price within the
// ceiling, stop count in the allowed set, carrier in the allowed set.
// Empty sets impose no restriction.
func applyFilters(offers []Offer, f Filters) []Offer {
	out := make([]Offer, 0, len(offers))
	for _, o := range offers {
		if o.Price > f.MaxPrice {
			continue
		}
		if len(f.Stops) > 0 && !slices.Contains(f.Stops, o.Stops) {
			continue
		}
		if len(f.Airlines) > 0 && !slices.Contains(f.Airlines, o.Airline) {
			continue
		}
		out = append(out, o)
	}
	return out
}
