package amadeus

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spottierlabs/spottier/pkg/flightset"
)

// rawOffer is the subset of the upstream offer structure normalization
// reads. Everything else in the payload is ignored.
type rawOffer struct {
	ID          string `json:"id"`
	Itineraries []struct {
		Duration string `json:"duration"`
		Segments []struct {
			CarrierCode string `json:"carrierCode"`
		} `json:"segments"`
	} `json:"itineraries"`
	Price struct {
		Total string `json:"total"`
	} `json:"price"`
}

// NormalizeOffers flattens raw upstream offers into the records the filter
// and sort layers work with: first-itinerary carrier, numeric total price,
// stop count (segments minus one) and the itinerary duration string. Only
// the first itinerary of each offer is considered; round-trip offers are
// not modeled.
func NormalizeOffers(raw []json.RawMessage) ([]flightset.Offer, error) {
	offers := make([]flightset.Offer, 0, len(raw))

	for i, msg := range raw {
		var ro rawOffer
		if err := json.Unmarshal(msg, &ro); err != nil {
			return nil, fmt.Errorf("offer %d: failed to decode: %w", i, err)
		}

		if len(ro.Itineraries) == 0 || len(ro.Itineraries[0].Segments) == 0 {
			return nil, fmt.Errorf("offer %q: no itinerary segments", ro.ID)
		}

		price, err := strconv.ParseFloat(ro.Price.Total, 64)
		if err != nil {
			return nil, fmt.Errorf("offer %q: malformed price %q: %w", ro.ID, ro.Price.Total, err)
		}
		if price < 0 {
			return nil, fmt.Errorf("offer %q: negative price %q", ro.ID, ro.Price.Total)
		}

		first := ro.Itineraries[0]
		offers = append(offers, flightset.Offer{
			ID:       ro.ID,
			Airline:  first.Segments[0].CarrierCode,
			Price:    price,
			Stops:    len(first.Segments) - 1,
			Duration: first.Duration,
		})
	}

	return offers, nil
}
