package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spottierlabs/spottier/pkg/amadeus"
)

// fetchOffers calls the proxy's /api/flights endpoint and returns the raw
// offer array. Proxy failures carry the {"error": ...} body the proxy
// mirrored from upstream.
func (a *App) fetchOffers(ctx context.Context, proxyURL string, query amadeus.SearchQuery) ([]json.RawMessage, error) {
	u := strings.TrimSuffix(proxyURL, "/") + "/api/flights?" + query.Values().Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach proxy: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read proxy response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var proxyErr struct {
			Error json.RawMessage `json:"error"`
		}
		if err := json.Unmarshal(body, &proxyErr); err == nil && len(proxyErr.Error) > 0 {
			return nil, fmt.Errorf("search failed with status %d: %s", resp.StatusCode, proxyErr.Error)
		}
		return nil, fmt.Errorf("search failed with status %d: %s", resp.StatusCode, body)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode proxy response: %w", err)
	}

	return raw, nil
}
