// Package amadeus is a minimal client for the Amadeus flight-offers API.
//
// The client caches one bearer credential per process behind a mutex and
// refreshes it with the OAuth2 client_credentials grant when a request
// finds it absent or expired. Search failures surface as typed errors
// (AuthError for the exchange, UpstreamError for the offers call) carrying
// whatever status and body the upstream produced, so the proxy can mirror
// them to its own callers.
package amadeus
