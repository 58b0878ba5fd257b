package flightset_test

import (
	"testing"

	"github.com/spottierlabs/spottier/pkg/flightset"
	"github.com/stretchr/testify/require"
)

func ids(view []flightset.Offer) []string {
	out := make([]string, len(view))
	for i, o := range view {
		out[i] = o.ID
	}
	return out
}

func TestSortByPriceIsStable(t *testing.T) {
	view := []flightset.Offer{
		{ID: "1", Price: 500},
		{ID: "2", Price: 200},
		{ID: "3", Price: 500},
	}

	sorted := flightset.SortBy(view, flightset.SortPriceAsc)

	// Equal prices keep their original relative order
	require.Equal(t, []string{"2", "1", "3"}, ids(sorted))
}

func TestSortByPriceDesc(t *testing.T) {
	view := []flightset.Offer{
		{ID: "1", Price: 500},
		{ID: "2", Price: 200},
		{ID: "3", Price: 500},
	}

	sorted := flightset.SortBy(view, flightset.SortPriceDesc)
	require.Equal(t, []string{"1", "3", "2"}, ids(sorted))
}

func TestSortByStops(t *testing.T) {
	view := []flightset.Offer{
		{ID: "1", Stops: 2},
		{ID: "2", Stops: 0},
		{ID: "3", Stops: 1},
	}

	sorted := flightset.SortBy(view, flightset.SortStops)
	require.Equal(t, []string{"2", "3", "1"}, ids(sorted))
}

func TestSortByDurationIsLexicographic(t *testing.T) {
	view := []flightset.Offer{
		{ID: "1", Duration: "PT9H05M"},
		{ID: "2", Duration: "PT2H30M"},
		{ID: "3", Duration: "PT2H10M"},
	}

	sorted := flightset.SortBy(view, flightset.SortDuration)
	require.Equal(t, []string{"3", "2", "1"}, ids(sorted))
}

func TestSortByDoesNotMutateInput(t *testing.T) {
	view := []flightset.Offer{
		{ID: "1", Price: 500},
		{ID: "2", Price: 200},
	}

	_ = flightset.SortBy(view, flightset.SortPriceAsc)
	require.Equal(t, []string{"1", "2"}, ids(view))
}

func TestSortByUnknownKeyReturnsViewUnchanged(t *testing.T) {
	view := []flightset.Offer{
		{ID: "1", Price: 500},
		{ID: "2", Price: 200},
	}

	sorted := flightset.SortBy(view, flightset.SortKey("departure"))
	require.Equal(t, []string{"1", "2"}, ids(sorted))
}
