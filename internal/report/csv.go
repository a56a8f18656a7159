package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/guarzo/poegemgap/internal/analysis"
)

// EscapeCSVCell protects against CSV formula injection by quoting cells
// that a spreadsheet would interpret as a formula. Gem names come from a
// third-party service, so they are not trusted.
func EscapeCSVCell(value string) string {
	if value == "" {
		return value
	}
	switch value[0] {
	case '=', '+', '-', '@', '|', '%', '\t', '\r', '\n':
		return "'" + value
	}
	return value
}

// escapeRow escapes all cells in a row.
func escapeRow(row []string) []string {
	escaped := make([]string, len(row))
	for i, cell := range row {
		escaped[i] = EscapeCSVCell(cell)
	}
	return escaped
}

// WriteOptionsCSV writes regrading options as CSV, one row per option with
// the outcome breakdown flattened into a single column.
func WriteOptionsCSV(w io.Writer, options []analysis.Option) error {
	cw := csv.NewWriter(w)

	header := []string{"gem", "guaranteed", "profit_ex", "outcomes"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, opt := range options {
		guaranteed := "no"
		if opt.Guaranteed {
			guaranteed = "yes"
		}

		var outcomes []string
		for _, o := range opt.Outcomes {
			outcomes = append(outcomes, fmt.Sprintf("%s %.3f %.2f", o.Quality, o.Chance, o.PriceEx))
		}

		row := escapeRow([]string{
			opt.Name,
			guaranteed,
			fmt.Sprintf("%.2f", opt.ProfitEx),
			strings.Join(outcomes, "; "),
		})
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
