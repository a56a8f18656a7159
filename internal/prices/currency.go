package prices

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/guarzo/poegemgap/internal/model"
)

// currencyOverview mirrors the poe.ninja currency overview payload.
type currencyOverview struct {
	Lines []struct {
		CurrencyTypeName string   `json:"currencyTypeName"`
		ChaosEquivalent  *float64 `json:"chaosEquivalent"`
	} `json:"lines"`
}

// DecodeCurrency decodes a currency overview into chaos-equivalent buy
// rates. Lines without a chaosEquivalent value are skipped.
func DecodeCurrency(r io.Reader) (model.CurrencyRates, error) {
	var overview currencyOverview
	if err := json.NewDecoder(r).Decode(&overview); err != nil {
		return nil, fmt.Errorf("parsing currency overview: %w", err)
	}

	rates := make(model.CurrencyRates, len(overview.Lines))
	for _, line := range overview.Lines {
		if line.ChaosEquivalent == nil {
			continue
		}
		rates[line.CurrencyTypeName] = *line.ChaosEquivalent
	}

	return rates, nil
}

// LoadCurrency decodes a currency overview previously written by the fetcher.
func LoadCurrency(path string) (model.CurrencyRates, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open currency prices: %w", err)
	}
	defer f.Close()

	return DecodeCurrency(f)
}
