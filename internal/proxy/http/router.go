// Package http wires the proxy's inbound surface: a ServeMux behind a
// logging, CORS and rate-limit middleware chain.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/spottierlabs/spottier/pkg/amadeus"
	"github.com/spottierlabs/spottier/pkg/httpx"
	"github.com/spottierlabs/spottier/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware
	handler     http.Handler

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	Flights *amadeus.Client
}

func NewRouter(buildVersion string, corsOrigins []string, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
	}

	c := cors.New(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
	})

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		c.Handler,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.Mux.HandleFunc("GET /{$}", RootHandler())

	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// The search path fans out to the upstream flight-offers API, so it
	// carries the tighter rate limit profile
	flightsHandler := &FlightsHandler{Client: r.Flights}
	r.Mux.Handle("GET /api/flights",
		httpx.Chain(flightsHandler,
			httpx.RateLimitByIP(httpx.SearchLimit),
		),
	)

	// The global chain is immutable once routes are applied, so build it once
	r.handler = httpx.Chain(r.Mux, r.middlewares...)
}

// ServeHTTP implements http.Handler for Router behind the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}
