package amadeus

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// DefaultBaseURL points at the Amadeus self-service test environment.
const DefaultBaseURL = "https://test.api.amadeus.com"

const (
	tokenPath        = "/v1/security/oauth2/token"
	flightOffersPath = "/v2/shopping/flight-offers"
)

// Client talks to the Amadeus API. It owns a single cached credential and
// refreshes it transparently when a request finds it absent or expired.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	clientID     string
	clientSecret string

	// Now is the clock used for expiry checks. Tests override it.
	Now func() time.Time

	mu   sync.RWMutex
	cred *Credential
}

// NewClient creates an Amadeus client with the given credentials. An empty
// baseURL selects the test environment.
func NewClient(baseURL, clientID, clientSecret string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		clientID:     clientID,
		clientSecret: clientSecret,
		Now:          time.Now,
	}
}

// Credential returns a copy of the cached credential, if any. It does not
// trigger a refresh; use Token for that.
func (c *Client) Credential() (Credential, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.cred == nil {
		return Credential{}, false
	}
	return *c.cred, true
}
