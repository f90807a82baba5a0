package markets

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer adds thousands separators the way the report expects (38,500.25).
var printer = message.NewPrinter(language.English)

// FormatReport renders a MarketReport as a Markdown report. Values and
// changes round to two decimals; the change line carries a directional glyph
// (▲ for non-negative, ▼ for negative) and an explicitly signed percentage.
func FormatReport(r *MarketReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "**Stock Market Information for %s**\n\n", r.Info.Country)

	b.WriteString("**Stock Exchanges:**\n")
	for _, name := range r.Info.Exchanges {
		fmt.Fprintf(&b, "- %s\n", name)
	}

	fmt.Fprintf(&b, "\n**Primary Exchange:** %s\n", r.Info.PrimaryExchange)
	fmt.Fprintf(&b, "**Headquarters Location:** %s\n\n", r.Info.HQLocation)

	b.WriteString("**Major Stock Indices:**\n\n")
	for _, quote := range r.Indices {
		if quote.Err != nil {
			fmt.Fprintf(&b, "**%s** (%s): %s\n\n", quote.Name, quote.Symbol, quote.Err)
			continue
		}

		glyph := "▲"
		if quote.Change < 0 {
			glyph = "▼"
		}

		fmt.Fprintf(&b, "**%s** (%s)\n", quote.Name, quote.Symbol)
		printer.Fprintf(&b, "- Current Value: %.2f\n", quote.Value)
		printer.Fprintf(&b, "- Change: %s %.2f (%+.2f%%)\n", glyph, math.Abs(quote.Change), quote.ChangePercent)
		printer.Fprintf(&b, "- Previous Close: %.2f\n", quote.PreviousClose)
		fmt.Fprintf(&b, "- Last Updated: %s\n\n", quote.LastUpdated)
	}

	return b.String()
}
