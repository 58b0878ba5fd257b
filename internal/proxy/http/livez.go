package http

import (
	"net/http"
	"time"

	"github.com/spottierlabs/spottier/pkg/httpx"
)

// HealthResponse is the JSON body of the /livez probe.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}

// RootHandler serves GET / with a plain-text liveness acknowledgement.
func RootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("flight proxy is running\n"))
	}
}

// LivezHandler serves GET /livez with service health, uptime and version.
// It always returns 200 OK if the service is running.
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		}
		httpx.WriteJSON(w, http.StatusOK, response)
	}
}
