package amadeus

import (
	"fmt"
	"net/http"
)

// AuthError reports a failed credential exchange. It is never retried
// automatically; it surfaces to the caller of the outer search operation.
type AuthError struct {
	// Status is the HTTP status from the auth endpoint, or 0 when the
	// request never completed.
	Status int

	// Body is the raw auth endpoint response body, when one was received.
	Body string

	Err error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("amadeus: credential exchange failed: %v", e.Err)
	}
	return fmt.Sprintf("amadeus: credential exchange failed with status %d: %s", e.Status, e.Body)
}

func (e *AuthError) Unwrap() error { return e.Err }

// HTTPStatus returns the status a proxy response should mirror for this
// failure, defaulting to 500 when the exchange never reached the upstream.
func (e *AuthError) HTTPStatus() int {
	if e.Status == 0 {
		return http.StatusInternalServerError
	}
	return e.Status
}

// UpstreamError reports a failed flight-offers query made with a valid
// credential. Status and body are passed through with best-effort fidelity.
type UpstreamError struct {
	// Status is the upstream HTTP status, or 0 when the request never
	// completed.
	Status int

	// Body is the upstream error body, when one was received.
	Body string

	Err error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("amadeus: flight offers request failed: %v", e.Err)
	}
	return fmt.Sprintf("amadeus: flight offers request failed with status %d: %s", e.Status, e.Body)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// HTTPStatus returns the status a proxy response should mirror for this
// failure, defaulting to 500 when no upstream status is available.
func (e *UpstreamError) HTTPStatus() int {
	if e.Status == 0 {
		return http.StatusInternalServerError
	}
	return e.Status
}
