package quality

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/guarzo/poegemgap/internal/model"
)

// tableSelector locates the alternate-quality stat table on the poedb
// quality reference page.
const tableSelector = "#GrantedEffectQualityStatsQualityGem table"

// Parse extracts per-gem alternate-quality roll chances from the poedb
// quality page. For each gem the chance of an alt quality is its weight
// divided by the sum of that gem's non-Superior weights.
func Parse(r io.Reader) (model.QualityChances, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing quality page: %w", err)
	}

	table := doc.Find(tableSelector).First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("quality table %q not found", tableSelector)
	}

	weights := make(map[string]map[string]int)
	sums := make(map[string]int)

	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 4 {
			return
		}

		name := strings.TrimSpace(cells.Eq(0).Text())
		qual := strings.TrimSpace(cells.Eq(1).Text())
		if name == "" || qual == model.QualitySuperior {
			return
		}

		weight, err := strconv.Atoi(strings.TrimSpace(cells.Eq(3).Text()))
		if err != nil {
			// Non-numeric weight cells show up on malformed rows; skip them.
			return
		}

		if weights[name] == nil {
			weights[name] = make(map[string]int)
		}
		weights[name][qual] = weight
		sums[name] += weight
	})

	if len(weights) == 0 {
		return nil, fmt.Errorf("quality table has no usable rows")
	}

	chances := make(model.QualityChances, len(weights))
	for name, perQuality := range weights {
		chances[name] = make(map[string]float64, len(perQuality))
		for qual, weight := range perQuality {
			chances[name][qual] = float64(weight) / float64(sums[name])
		}
	}

	return chances, nil
}

// ParseFile parses a quality page previously written by the fetcher.
func ParseFile(path string) (model.QualityChances, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open quality page: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
