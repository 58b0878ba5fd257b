package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// flightOffersResponse is the envelope of the flight-offers endpoint. The
// pointer distinguishes a present-but-empty data array from a missing one.
type flightOffersResponse struct {
	Data *[]json.RawMessage `json:"data"`
}

// FlightOffers issues a single search against the flight-offers endpoint
// with the query forwarded verbatim, obtaining or reusing a credential
// first. The raw offer objects come back unmodified; normalization is the
// caller's concern. There is no retry and no backoff: any failure is
// terminal for this request.
func (c *Client) FlightOffers(ctx context.Context, params url.Values) ([]json.RawMessage, error) {
	token, err := c.Token(ctx)
	if err != nil {
		return nil, err
	}

	u := c.BaseURL + flightOffersPath
	if encoded := params.Encode(); encoded != "" {
		u += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &UpstreamError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Err: fmt.Errorf("failed to send request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	// A 200 with an unusable body is not an upstream verdict worth
	// mirroring; Status stays 0 so the default 500 applies.
	var fr flightOffersResponse
	if err := json.Unmarshal(body, &fr); err != nil {
		return nil, &UpstreamError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if fr.Data == nil {
		return nil, &UpstreamError{Err: fmt.Errorf("malformed flight offers response: data field missing")}
	}

	return *fr.Data, nil
}
