package currency

import (
	"fmt"
	"strings"
)

// notAvailable is the literal rendered for targets missing from the provider
// response.
const notAvailable = "Not available"

// FormatReport renders a CountryRates record as a Markdown report. Numeric
// rates use four decimal places; unavailable rates pass the literal through.
func FormatReport(r *CountryRates) string {
	var b strings.Builder

	fmt.Fprintf(&b, "**Currency Information for %s**\n\n", r.Currency.Country)
	fmt.Fprintf(&b, "Currency: %s (%s)\n\n", r.Currency.Name, r.Currency.Code)

	switch {
	case r.Snapshot != nil:
		fmt.Fprintf(&b, "**Exchange Rates (1 %s = ):**\n", r.Currency.Code)
		for _, rate := range r.Snapshot.Rates {
			if rate.Available {
				fmt.Fprintf(&b, "- %s: %.4f\n", rate.Code, rate.Value)
			} else {
				fmt.Fprintf(&b, "- %s: %s\n", rate.Code, notAvailable)
			}
		}
		if r.Snapshot.LastUpdated != "" {
			fmt.Fprintf(&b, "\nLast Updated: %s\n", r.Snapshot.LastUpdated)
		}
	case r.FetchErr != nil:
		fmt.Fprintf(&b, "Exchange rates unavailable: %s\n", r.FetchErr)
	}

	return b.String()
}
