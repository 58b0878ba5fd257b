package amadeus_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spottierlabs/spottier/pkg/amadeus"
	"github.com/stretchr/testify/require"
)

// fakeUpstream serves both the token endpoint and the flight-offers
// endpoint, capturing what the offers call received.
func fakeUpstream(t *testing.T, offersStatus int, offersBody string) (*httptest.Server, *http.Request) {
	t.Helper()

	var captured http.Request
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":"test-token","expires_in":1799}`))
	})
	mux.HandleFunc("GET /v2/shopping/flight-offers", func(w http.ResponseWriter, r *http.Request) {
		captured = *r.Clone(r.Context())
		w.WriteHeader(offersStatus)
		_, _ = w.Write([]byte(offersBody))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &captured
}

func TestFlightOffersForwardsQueryVerbatim(t *testing.T) {
	srv, captured := fakeUpstream(t, http.StatusOK,
		`{"data":[{"id":"1","price":{"total":"250.00"}},{"id":"2","price":{"total":"410.50"}}]}`)

	client := amadeus.NewClient(srv.URL, "k", "s")

	query := amadeus.SearchQuery{
		Origin:        "del",
		Destination:   "bom",
		DepartureDate: "2024-05-01",
	}
	require.NoError(t, query.Validate())

	offers, err := client.FlightOffers(context.Background(), query.Values())
	require.NoError(t, err)
	require.Len(t, offers, 2)
	require.JSONEq(t, `{"id":"1","price":{"total":"250.00"}}`, string(offers[0]))

	params := captured.URL.Query()
	require.Equal(t, "DEL", params.Get("originLocationCode"))
	require.Equal(t, "BOM", params.Get("destinationLocationCode"))
	require.Equal(t, "2024-05-01", params.Get("departureDate"))
	require.Equal(t, "1", params.Get("adults"))
	require.Equal(t, "Bearer test-token", captured.Header.Get("Authorization"))
}

func TestFlightOffersEmptyResult(t *testing.T) {
	srv, _ := fakeUpstream(t, http.StatusOK, `{"data":[]}`)

	client := amadeus.NewClient(srv.URL, "k", "s")

	offers, err := client.FlightOffers(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, offers)
}

func TestFlightOffersUpstreamFailure(t *testing.T) {
	srv, _ := fakeUpstream(t, http.StatusUnauthorized, `{"errors":[{"status":401,"title":"Unauthorized"}]}`)

	client := amadeus.NewClient(srv.URL, "k", "s")

	_, err := client.FlightOffers(context.Background(), nil)
	require.Error(t, err)

	var upstreamErr *amadeus.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	require.Equal(t, http.StatusUnauthorized, upstreamErr.Status)
	require.JSONEq(t, `{"errors":[{"status":401,"title":"Unauthorized"}]}`, upstreamErr.Body)
}

func TestFlightOffersMalformedSuccessBody(t *testing.T) {
	// A 200 whose body cannot be used must not surface as a 200
	cases := map[string]string{
		"missing data field": `{"meta":{"count":0}}`,
		"not json":           `<html>oops</html>`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv, _ := fakeUpstream(t, http.StatusOK, body)

			client := amadeus.NewClient(srv.URL, "k", "s")

			var upstreamErr *amadeus.UpstreamError
			_, err := client.FlightOffers(context.Background(), nil)
			require.ErrorAs(t, err, &upstreamErr)
			require.Zero(t, upstreamErr.Status)
			require.Equal(t, http.StatusInternalServerError, upstreamErr.HTTPStatus())
		})
	}
}

func TestFlightOffersAuthFailurePropagates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := amadeus.NewClient(srv.URL, "k", "s")

	// The search fails before ever reaching the offers endpoint
	var authErr *amadeus.AuthError
	_, err := client.FlightOffers(context.Background(), nil)
	require.ErrorAs(t, err, &authErr)
}
