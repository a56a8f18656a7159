package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/guarzo/poegemgap/internal/analysis"
	"github.com/guarzo/poegemgap/internal/fetch"
	"github.com/guarzo/poegemgap/internal/prices"
	"github.com/guarzo/poegemgap/internal/quality"
	"github.com/guarzo/poegemgap/internal/report"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Report profitable gem regrades from the local snapshot",
		Long: `Analyze reads the files written by fetch and reports, best first, the
expected profit of applying a regrading lens to each gem — once for fresh
level-1 gems and once for maxed 20/20 gems — plus the plain gems most
worth leveling for a straight sale.

Options marked "!!!" are guaranteed: every possible outcome sells above
the lens (and gem) cost.`,
		Args: cobra.NoArgs,
		RunE: runAnalyzeCmd,
	}

	cmd.Flags().String("gems-html", "", "Quality page path (default <data-dir>/"+fetch.QualityFile+")")
	cmd.Flags().String("prices-json", "", "Gem price overview path (default <data-dir>/"+fetch.GemPricesFile+")")
	cmd.Flags().String("currency-json", "", "Currency overview path (default <data-dir>/"+fetch.CurrencyFile+")")
	cmd.Flags().Int("min-amount", 10, "Minimum listing count for a price to be trusted")
	cmd.Flags().Int("count", 10, "Show up to this many results per section")
	cmd.Flags().Bool("guaranteed", false, "Only show gems that never result in a loss")
	cmd.Flags().String("csv", "", "Also write the level-1 regrading table to this CSV file")

	return cmd
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	gemsHTML, _ := cmd.Flags().GetString("gems-html")
	pricesJSON, _ := cmd.Flags().GetString("prices-json")
	currencyJSON, _ := cmd.Flags().GetString("currency-json")
	minAmount, _ := cmd.Flags().GetInt("min-amount")
	count, _ := cmd.Flags().GetInt("count")
	guaranteed, _ := cmd.Flags().GetBool("guaranteed")
	csvPath, _ := cmd.Flags().GetString("csv")

	if gemsHTML == "" {
		gemsHTML = filepath.Join(dataDir, fetch.QualityFile)
	}
	if pricesJSON == "" {
		pricesJSON = filepath.Join(dataDir, fetch.GemPricesFile)
	}
	if currencyJSON == "" {
		currencyJSON = filepath.Join(dataDir, fetch.CurrencyFile)
	}

	chances, err := quality.ParseFile(gemsHTML)
	if err != nil {
		return err
	}
	gems, err := prices.LoadGems(pricesJSON)
	if err != nil {
		return err
	}
	rates, err := prices.LoadCurrency(currencyJSON)
	if err != nil {
		return err
	}
	costs, err := analysis.LensCostsFrom(rates)
	if err != nil {
		return err
	}

	params := analysis.Params{
		GuaranteedOnly:  guaranteed,
		MinCount:        minAmount,
		PrimeLensEx:     costs.PrimeEx(),
		SecondaryLensEx: costs.SecondaryEx(),
	}

	out := cmd.OutOrStdout()
	report.WriteCurrency(out, costs)
	fmt.Fprintln(out)

	fresh := analysis.RegradeOptions(chances, gems, params)
	report.WriteOptions(out, "Regrading level 1 gems", fresh, count)
	fmt.Fprintln(out)

	maxedParams := params
	maxedParams.Maxed = true
	maxed := analysis.RegradeOptions(chances, gems, maxedParams)
	report.WriteOptions(out, "Regrading level 20/20 gems", maxed, count)
	fmt.Fprintln(out)

	report.WriteLeveledGems(out, analysis.BestLeveledGems(gems, count, minAmount))

	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return fmt.Errorf("create csv: %w", err)
		}
		defer f.Close()
		if err := report.WriteOptionsCSV(f, fresh); err != nil {
			return err
		}
	}

	return nil
}
