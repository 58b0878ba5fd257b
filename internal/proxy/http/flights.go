package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/spottierlabs/spottier/pkg/amadeus"
	"github.com/spottierlabs/spottier/pkg/httpx"
	"github.com/spottierlabs/spottier/pkg/slogx"
)

// FlightsHandler serves GET /api/flights.
//
// The query string is forwarded to the upstream flight-offers endpoint
// as-is; shape validation is the submitting client's job, not the proxy's.
// On success the response is the upstream data payload, a JSON array of raw
// offer objects. On failure the status mirrors the upstream status (500
// when none is available) with body {"error": <upstream body or message>}.
type FlightsHandler struct {
	Client *amadeus.Client
}

func (h *FlightsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// Search results are never cached by this layer; every request is a
	// fresh upstream query
	httpx.NoCache(w)

	offers, err := h.Client.FlightOffers(ctx, r.URL.Query())
	if err != nil {
		status, payload := searchFailure(err)
		log.Error("flight search failed", "status", status, "err", err)
		httpx.WriteJSON(w, status, map[string]any{"error": payload})
		return
	}

	log.Info("flight search served", "offers", len(offers))
	httpx.WriteJSON(w, http.StatusOK, offers)
}

// searchFailure maps a search error to the status the proxy should mirror
// and the payload for the error body. Upstream JSON bodies pass through
// unmodified; anything else degrades to a message string.
func searchFailure(err error) (int, any) {
	var authErr *amadeus.AuthError
	if errors.As(err, &authErr) {
		return authErr.HTTPStatus(), errorPayload(authErr.Body, err)
	}

	var upstreamErr *amadeus.UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.HTTPStatus(), errorPayload(upstreamErr.Body, err)
	}

	return http.StatusInternalServerError, err.Error()
}

func errorPayload(body string, err error) any {
	if body == "" {
		return err.Error()
	}
	if json.Valid([]byte(body)) {
		return json.RawMessage(body)
	}
	return body
}
