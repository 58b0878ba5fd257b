// Package cli implements spotctl, a terminal client for the flight proxy.
// It validates the search locally, fetches raw offers from the proxy,
// normalizes them, and renders a filtered, sorted table.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spottierlabs/spottier/pkg/amadeus"
	"github.com/spottierlabs/spottier/pkg/flightset"
)

const defaultProxyURL = "http://localhost:5000"

type App struct {
	Stdout io.Writer
	Stderr io.Writer

	HTTPClient *http.Client
}

func NewApp() *App {
	return &App{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type searchFlags struct {
	from     string
	to       string
	date     string
	adults   int
	maxPrice float64
	stops    string
	airlines string
	sort     string
	proxy    string
}

func newFlagSet(stderr io.Writer) (*flag.FlagSet, *searchFlags) {
	f := &searchFlags{}
	fs := flag.NewFlagSet("spotctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.from, "from", "", "Origin airport code (3 letters)")
	fs.StringVar(&f.to, "to", "", "Destination airport code (3 letters)")
	fs.StringVar(&f.date, "date", "", "Departure date YYYY-MM-DD")
	fs.IntVar(&f.adults, "adults", 1, "Number of adult passengers")
	fs.Float64Var(&f.maxPrice, "max-price", 10000, "Maximum acceptable total price")
	fs.StringVar(&f.stops, "stops", "", "Comma-separated allowed stop counts, e.g. 0,1 (empty: any)")
	fs.StringVar(&f.airlines, "airlines", "", "Comma-separated allowed carrier codes, e.g. BA,LH (empty: any)")
	fs.StringVar(&f.sort, "sort", "price", "Sort key: price, price-desc, stops, duration")
	fs.StringVar(&f.proxy, "proxy", envOrDefault("SPOTTIER_PROXY_URL", defaultProxyURL), "Flight proxy base URL")
	return fs, f
}

func (a *App) Run(ctx context.Context, args []string) error {
	fs, f := newFlagSet(a.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	query := amadeus.SearchQuery{
		Origin:        f.from,
		Destination:   f.to,
		DepartureDate: f.date,
		Adults:        f.adults,
	}

	// Reject malformed input before any network call
	if err := query.Validate(); err != nil {
		return err
	}

	sortKey, err := parseSortKey(f.sort)
	if err != nil {
		return err
	}

	update, err := parseFilterFlags(f)
	if err != nil {
		return err
	}

	raw, err := a.fetchOffers(ctx, f.proxy, query)
	if err != nil {
		return err
	}

	offers, err := amadeus.NormalizeOffers(raw)
	if err != nil {
		return fmt.Errorf("failed to normalize offers: %w", err)
	}

	store := flightset.NewStore()
	store.SetResults(offers)
	store.UpdateFilters(update)

	view := flightset.SortBy(store.Filtered(), sortKey)
	renderOffers(a.Stdout, view, len(offers))
	return nil
}

func parseSortKey(s string) (flightset.SortKey, error) {
	switch key := flightset.SortKey(s); key {
	case flightset.SortPriceAsc, flightset.SortPriceDesc, flightset.SortStops, flightset.SortDuration:
		return key, nil
	default:
		return "", fmt.Errorf("unknown sort key %q (want price, price-desc, stops, duration)", s)
	}
}

func parseFilterFlags(f *searchFlags) (flightset.FilterUpdate, error) {
	update := flightset.FilterUpdate{MaxPrice: &f.maxPrice}

	if f.stops != "" {
		for _, part := range strings.Split(f.stops, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || n < 0 {
				return flightset.FilterUpdate{}, fmt.Errorf("invalid stop count %q", part)
			}
			update.Stops = append(update.Stops, n)
		}
	}

	if f.airlines != "" {
		for _, part := range strings.Split(f.airlines, ",") {
			if code := strings.ToUpper(strings.TrimSpace(part)); code != "" {
				update.Airlines = append(update.Airlines, code)
			}
		}
	}

	return update, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
