package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/spottierlabs/spottier/pkg/amadeus"
	"github.com/spottierlabs/spottier/pkg/flightset"
	"github.com/stretchr/testify/require"
)

const fixtureOffers = `[
	{"id":"1","itineraries":[{"duration":"PT6H","segments":[{"carrierCode":"AI"},{"carrierCode":"AI"}]}],"price":{"total":"500.00"}},
	{"id":"2","itineraries":[{"duration":"PT2H","segments":[{"carrierCode":"UK"}]}],"price":{"total":"200.00"}},
	{"id":"3","itineraries":[{"duration":"PT4H","segments":[{"carrierCode":"BA"}]}],"price":{"total":"500.00"}}
]`

func newTestApp() (*App, *bytes.Buffer) {
	var out bytes.Buffer
	app := NewApp()
	app.Stdout = &out
	app.Stderr = &out
	return app, &out
}

func TestRunRejectsInvalidQueryBeforeAnyNetworkCall(t *testing.T) {
	var hits atomic.Int64
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer proxy.Close()

	app, _ := newTestApp()
	err := app.Run(context.Background(), []string{
		"-from", "DE", "-to", "BOM", "-date", "2024-05-01", "-proxy", proxy.URL,
	})

	var verr *amadeus.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "origin", verr.Field)
	require.Zero(t, hits.Load(), "validation failures must not reach the proxy")
}

func TestRunRendersSortedTable(t *testing.T) {
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/flights", r.URL.Path)
		require.Equal(t, "DEL", r.URL.Query().Get("originLocationCode"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fixtureOffers))
	}))
	defer proxy.Close()

	app, out := newTestApp()
	err := app.Run(context.Background(), []string{
		"-from", "del", "-to", "bom", "-date", "2024-05-01", "-proxy", proxy.URL,
	})
	require.NoError(t, err)

	text := out.String()
	require.Contains(t, text, "3 of 3 flights")

	// Default sort is price ascending, stable for the two 500s. Padded
	// carrier cells avoid matching the AIRLINE column header.
	require.Less(t, strings.Index(text, " UK "), strings.Index(text, " AI "))
	require.Less(t, strings.Index(text, " AI "), strings.Index(text, " BA "))
	require.Contains(t, text, "min 200.00 / avg 400.00 / max 500.00")
}

func TestRunAppliesFilters(t *testing.T) {
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(fixtureOffers))
	}))
	defer proxy.Close()

	app, out := newTestApp()
	err := app.Run(context.Background(), []string{
		"-from", "DEL", "-to", "BOM", "-date", "2024-05-01", "-proxy", proxy.URL,
		"-max-price", "300", "-stops", "0",
	})
	require.NoError(t, err)

	text := out.String()
	require.Contains(t, text, "1 of 3 flights")
	require.Contains(t, text, "UK")
	require.NotContains(t, text, "BA")
}

func TestRunSurfacesProxyError(t *testing.T) {
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"errors":[{"title":"Unauthorized"}]}}`))
	}))
	defer proxy.Close()

	app, _ := newTestApp()
	err := app.Run(context.Background(), []string{
		"-from", "DEL", "-to", "BOM", "-date", "2024-05-01", "-proxy", proxy.URL,
	})

	require.ErrorContains(t, err, "status 401")
	require.ErrorContains(t, err, "Unauthorized")
}

func TestParseSortKey(t *testing.T) {
	for _, valid := range []string{"price", "price-desc", "stops", "duration"} {
		key, err := parseSortKey(valid)
		require.NoError(t, err)
		require.Equal(t, flightset.SortKey(valid), key)
	}

	_, err := parseSortKey("altitude")
	require.ErrorContains(t, err, "unknown sort key")
}

func TestParseFilterFlags(t *testing.T) {
	f := &searchFlags{maxPrice: 450, stops: "0, 1", airlines: "ba, lh"}

	update, err := parseFilterFlags(f)
	require.NoError(t, err)
	require.Equal(t, 450.0, *update.MaxPrice)
	require.Equal(t, []int{0, 1}, update.Stops)
	require.Equal(t, []string{"BA", "LH"}, update.Airlines)

	f = &searchFlags{stops: "one"}
	_, err = parseFilterFlags(f)
	require.ErrorContains(t, err, "invalid stop count")
}
