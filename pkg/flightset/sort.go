package flightset

import (
	"slices"
	"strings"
)

// SortKey selects the display ordering of a filtered view.
type SortKey string

const (
	SortPriceAsc  SortKey = "price"
	SortPriceDesc SortKey = "price-desc"
	SortStops     SortKey = "stops"
	SortDuration  SortKey = "duration"
)

// SortBy returns a new slice ordered by the given key. The sort is stable:
// offers comparing equal keep their original relative order, so flight
// identity does not jump around on re-render. An unknown key returns the
// view unchanged. The input is never mutated.
func SortBy(view []Offer, key SortKey) []Offer {
	out := slices.Clone(view)

	switch key {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b Offer) int {
			return cmpFloat(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b Offer) int {
			return cmpFloat(b.Price, a.Price)
		})
	case SortStops:
		slices.SortStableFunc(out, func(a, b Offer) int {
			return a.Stops - b.Stops
		})
	case SortDuration:
		// ISO-8601 durations like PT6H15M are compared lexicographically,
		// not by elapsed time.
		slices.SortStableFunc(out, func(a, b Offer) int {
			return strings.Compare(a.Duration, b.Duration)
		})
	}

	return out
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
