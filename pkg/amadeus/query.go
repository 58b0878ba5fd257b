package amadeus

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// SearchQuery is a validated flight search: where from, where to, when.
// It is built from user input at submission time and immutable afterwards.
type SearchQuery struct {
	Origin        string // 3-letter IATA location code
	Destination   string // 3-letter IATA location code
	DepartureDate string // calendar date, YYYY-MM-DD
	Adults        int    // passenger count, defaults to 1
}

// ValidationError reports malformed search input. It is raised before any
// network call and never reaches the proxy.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks the query shape: both location codes must be exactly
// three letters and the departure date must be a present calendar date.
func (q SearchQuery) Validate() error {
	if err := validateLocationCode("origin", q.Origin); err != nil {
		return err
	}
	if err := validateLocationCode("destination", q.Destination); err != nil {
		return err
	}

	if q.DepartureDate == "" {
		return &ValidationError{Field: "departureDate", Reason: "date is required"}
	}
	if _, err := time.Parse("2006-01-02", q.DepartureDate); err != nil {
		return &ValidationError{Field: "departureDate", Reason: "date must be YYYY-MM-DD"}
	}

	return nil
}

func validateLocationCode(field, code string) error {
	if len(code) != 3 {
		return &ValidationError{Field: field, Reason: "airport code must be exactly 3 letters"}
	}
	for _, r := range code {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return &ValidationError{Field: field, Reason: "airport code must be exactly 3 letters"}
		}
	}
	return nil
}

// Values renders the query as flight-offers request parameters, with
// location codes normalized to uppercase.
func (q SearchQuery) Values() url.Values {
	adults := q.Adults
	if adults <= 0 {
		adults = 1
	}

	return url.Values{
		"originLocationCode":      {strings.ToUpper(q.Origin)},
		"destinationLocationCode": {strings.ToUpper(q.Destination)},
		"departureDate":           {q.DepartureDate},
		"adults":                  {strconv.Itoa(adults)},
	}
}
