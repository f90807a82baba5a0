package aggregate

import (
	"fmt"
	"strings"

	"github.com/finsight-io/finsight/internal/maps"
)

// buildReport concatenates the step sections into the final Markdown report.
// Failed sections arrive here as error text and are rendered in place; the
// location block is included only when the lookup succeeded.
func buildReport(country, currencySection, marketSection string, location *maps.LocationInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Financial Information for %s\n\n", country)

	b.WriteString(currencySection)
	b.WriteString("\n\n")
	b.WriteString(marketSection)
	b.WriteString("\n\n")

	if location != nil {
		b.WriteString("---\n\n")
		b.WriteString("**Stock Exchange Location:**\n\n")
		fmt.Fprintf(&b, "Exchange: %s\n\n", location.Exchange)
		if location.Address != "" {
			fmt.Fprintf(&b, "Address: %s\n\n", location.Address)
		}
	}

	return b.String()
}
