package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Credential is a bearer token with an absolute expiry. Credentials are
// replaced wholesale on refresh, never mutated in place.
type Credential struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Valid reports whether the credential can still be used at the given time.
// A credential is usable iff the time is strictly before its expiry.
func (c Credential) Valid(now time.Time) bool {
	return now.Before(c.ExpiresAt)
}

// tokenResponse is the shape of the Amadeus OAuth2 token endpoint response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// Token returns a valid access token, exchanging client credentials with
// the auth endpoint only when the cached credential is absent or expired.
// Overlapping callers serialize on the write lock, so an expired credential
// triggers a single exchange rather than a thundering herd.
func (c *Client) Token(ctx context.Context) (string, error) {
	c.mu.RLock()
	if c.cred != nil && c.cred.Valid(c.Now()) {
		token := c.cred.AccessToken
		c.mu.RUnlock()
		return token, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have refreshed while we waited for the lock
	if c.cred != nil && c.cred.Valid(c.Now()) {
		return c.cred.AccessToken, nil
	}

	cred, err := c.exchange(ctx)
	if err != nil {
		return "", err
	}

	c.cred = &cred
	return cred.AccessToken, nil
}

// exchange performs the client_credentials grant against the auth endpoint.
// Callers must hold the write lock.
func (c *Client) exchange(ctx context.Context) (Credential, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.BaseURL+tokenPath,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return Credential{}, &AuthError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Credential{}, &AuthError{Err: fmt.Errorf("failed to send request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Credential{}, &AuthError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return Credential{}, &AuthError{Status: resp.StatusCode, Body: string(body)}
	}

	// A 200 with an unusable body gets no mirrored status; Status stays 0
	// so the default 500 applies.
	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return Credential{}, &AuthError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	// Trust nothing about the upstream shape: a missing token or lifetime
	// must fail here, not as a nil deref three calls later
	if tr.AccessToken == "" || tr.ExpiresIn <= 0 {
		return Credential{}, &AuthError{Err: fmt.Errorf("malformed token response: access_token or expires_in missing")}
	}

	return Credential{
		AccessToken: tr.AccessToken,
		ExpiresAt:   c.Now().Add(time.Duration(tr.ExpiresIn) * time.Second),
	}, nil
}
