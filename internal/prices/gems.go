package prices

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guarzo/poegemgap/internal/model"
)

// gemOverview mirrors the poe.ninja SkillGem item overview payload.
type gemOverview struct {
	Lines []gemLine `json:"lines"`
}

type gemLine struct {
	Name         string  `json:"name"`
	Corrupted    bool    `json:"corrupted"`
	GemLevel     *int    `json:"gemLevel"`
	GemQuality   int     `json:"gemQuality"`
	ChaosValue   float64 `json:"chaosValue"`
	ExaltedValue float64 `json:"exaltedValue"`
	Count        int     `json:"count"`
}

// DecodeGems decodes a gem price overview and normalizes each line: the
// alternate-quality prefix and a leading "Vaal " are stripped from the name
// and recorded as fields. Listings without an explicit gem level are level 1.
func DecodeGems(r io.Reader) ([]model.Gem, error) {
	var overview gemOverview
	if err := json.NewDecoder(r).Decode(&overview); err != nil {
		return nil, fmt.Errorf("parsing gem overview: %w", err)
	}

	gems := make([]model.Gem, 0, len(overview.Lines))
	for _, line := range overview.Lines {
		name := line.Name
		qualityType := model.QualitySuperior
		for _, q := range model.AltQualities {
			if strings.HasPrefix(name, q+" ") {
				qualityType = q
				name = strings.SplitN(name, " ", 2)[1]
				break
			}
		}

		vaal := false
		if strings.HasPrefix(name, "Vaal ") {
			vaal = true
			name = strings.SplitN(name, " ", 2)[1]
		}

		level := 1
		if line.GemLevel != nil {
			level = *line.GemLevel
		}

		gems = append(gems, model.Gem{
			Name:         name,
			QualityType:  qualityType,
			Vaal:         vaal,
			Corrupted:    line.Corrupted,
			Level:        level,
			Quality:      line.GemQuality,
			ChaosValue:   line.ChaosValue,
			ExaltedValue: line.ExaltedValue,
			Count:        line.Count,
		})
	}

	return gems, nil
}

// LoadGems decodes a gem price overview previously written by the fetcher.
func LoadGems(path string) ([]model.Gem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gem prices: %w", err)
	}
	defer f.Close()

	return DecodeGems(f)
}

// Filter narrows FindPrice to viable listings.
type Filter struct {
	// Maxed restricts matches to level 20+, quality 20+ listings.
	Maxed bool
	// MinCount is the minimum number of listings for a price to be trusted.
	MinCount int
}

// FindPrice returns the cheapest listed exalted price for an uncorrupted gem
// with the given name and quality type, or 0 when nothing viable is listed.
func FindPrice(gems []model.Gem, name, qualityType string, filter Filter) float64 {
	best := 0.0
	found := false

	for _, gem := range gems {
		if gem.Name != name || gem.QualityType != qualityType {
			continue
		}
		if gem.Corrupted {
			continue
		}
		if filter.Maxed && (gem.Level < 20 || gem.Quality < 20) {
			continue
		}
		if gem.Count < filter.MinCount {
			continue
		}
		if !found || gem.ExaltedValue < best {
			best = gem.ExaltedValue
			found = true
		}
	}

	return best
}
