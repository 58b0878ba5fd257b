package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spottierlabs/spottier/pkg/flightset"
)

// renderOffers prints the filtered view as a table, with a price summary
// line over the visible offers.
func renderOffers(w io.Writer, view []flightset.Offer, total int) {
	if len(view) == 0 {
		fmt.Fprintf(w, "No flights matched your filters (%d offers returned).\n", total)
		return
	}

	fmt.Fprintf(w, "%d of %d flights\n\n", len(view), total)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tAIRLINE\tPRICE\tSTOPS\tDURATION")
	for _, o := range view {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%d\t%s\n", o.ID, o.Airline, o.Price, o.Stops, o.Duration)
	}
	tw.Flush()

	lo, avg, hi := priceSummary(view)
	fmt.Fprintf(w, "\nprices: min %.2f / avg %.2f / max %.2f\n", lo, avg, hi)
}

func priceSummary(view []flightset.Offer) (lo, avg, hi float64) {
	lo, hi = view[0].Price, view[0].Price
	var sum float64
	for _, o := range view {
		if o.Price < lo {
			lo = o.Price
		}
		if o.Price > hi {
			hi = o.Price
		}
		sum += o.Price
	}
	return lo, sum / float64(len(view)), hi
}
