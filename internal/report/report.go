package report

import (
	"fmt"
	"io"

	"github.com/guarzo/poegemgap/internal/analysis"
	"github.com/guarzo/poegemgap/internal/model"
)

// WriteCurrency prints the currency rates the analysis is based on.
func WriteCurrency(w io.Writer, costs analysis.LensCosts) {
	fmt.Fprintln(w, "Currency prices:")
	fmt.Fprintf(w, "  Exalt: %.1f c\n", costs.ExaltChaos)
	fmt.Fprintf(w, "  Primary: %.1f ex (%.1f c)\n", costs.PrimeEx(), costs.PrimeChaos)
	fmt.Fprintf(w, "  Secondary: %.1f ex (%.1f c)\n", costs.SecondaryEx(), costs.SecondaryChaos)
}

// WriteOptions prints up to limit regrading options under a heading.
// Guaranteed options are marked with "!!!".
func WriteOptions(w io.Writer, heading string, options []analysis.Option, limit int) {
	fmt.Fprintf(w, "%s:\n", heading)
	if limit > 0 && len(options) > limit {
		options = options[:limit]
	}
	for _, opt := range options {
		marker := ""
		if opt.Guaranteed {
			marker = "!!! "
		}
		details := ""
		for i, o := range opt.Outcomes {
			if i > 0 {
				details += ", "
			}
			details += fmt.Sprintf("%.0f%% %s %.1f ex", o.Chance*100, o.Quality, o.PriceEx)
		}
		fmt.Fprintf(w, "  %s%s: %.2f ex (%s)\n", marker, opt.Name, opt.ProfitEx, details)
	}
}

// WriteLeveledGems prints the best plain 20/20 gems by chaos value.
func WriteLeveledGems(w io.Writer, gems []model.Gem) {
	fmt.Fprintln(w, "Leveling gems to 20/20:")
	for _, gem := range gems {
		fmt.Fprintf(w, "  %s: %.1f c\n", gem.Name, gem.ChaosValue)
	}
}
