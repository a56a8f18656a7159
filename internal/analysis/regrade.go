package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/guarzo/poegemgap/internal/model"
	"github.com/guarzo/poegemgap/internal/prices"
)

// Currency type names the analysis depends on.
const (
	ExaltedOrb    = "Exalted Orb"
	PrimeLens     = "Prime Regrading Lens"
	SecondaryLens = "Secondary Regrading Lens"
)

// rareGems are drop-restricted gems whose market prices don't reflect
// regrading supply; they are excluded from the arbitrage scan.
var rareGems = map[string]bool{
	"Empower Support":                true,
	"Enlighten Support":              true,
	"Enhance Support":                true,
	"Elemental Penetration Support":  true,
	"Block Chance Reduction Support": true,
	"Portal":                         true,
}

// LensCosts carries the chaos rates the profit math needs.
type LensCosts struct {
	ExaltChaos     float64
	PrimeChaos     float64
	SecondaryChaos float64
}

// PrimeEx is the Prime Regrading Lens cost in exalted orbs.
func (c LensCosts) PrimeEx() float64 {
	return c.PrimeChaos / c.ExaltChaos
}

// SecondaryEx is the Secondary Regrading Lens cost in exalted orbs.
func (c LensCosts) SecondaryEx() float64 {
	return c.SecondaryChaos / c.ExaltChaos
}

// LensCostsFrom pulls the three required rates out of a currency snapshot.
func LensCostsFrom(rates model.CurrencyRates) (LensCosts, error) {
	var costs LensCosts
	for _, want := range []struct {
		name string
		dst  *float64
	}{
		{ExaltedOrb, &costs.ExaltChaos},
		{PrimeLens, &costs.PrimeChaos},
		{SecondaryLens, &costs.SecondaryChaos},
	} {
		rate, ok := rates[want.name]
		if !ok || rate <= 0 {
			return LensCosts{}, fmt.Errorf("no rate for %s in currency snapshot", want.name)
		}
		*want.dst = rate
	}
	return costs, nil
}

// Outcome is one alternate-quality result of a regrade: the chance of
// rolling it and the exalted price it sells for.
type Outcome struct {
	Quality string
	Chance  float64
	PriceEx float64
}

// Option is a gem worth regrading, sorted output of RegradeOptions.
// Guaranteed means every possible outcome sells above the cost.
type Option struct {
	Name       string
	Guaranteed bool
	ProfitEx   float64
	Outcomes   []Outcome
}

// Params controls the regrading scan.
type Params struct {
	// Maxed analyzes regrading a 20/20 gem instead of a level-1 gem. The
	// cost then includes buying the Superior 20/20 gem itself.
	Maxed bool
	// GuaranteedOnly drops options that can roll a losing outcome.
	GuaranteedOnly bool
	// MinCount is the minimum listing count for a price to be trusted.
	MinCount int
	// Lens costs in exalted orbs.
	PrimeLensEx     float64
	SecondaryLensEx float64
}

// RegradeOptions computes the expected profit of applying a regrading lens
// to each gem with known alternate-quality chances. Support gems take a
// Secondary lens, everything else a Prime lens. Options with non-positive
// expected profit are dropped; the rest come back sorted best-first.
func RegradeOptions(chances model.QualityChances, gems []model.Gem, p Params) []Option {
	filter := prices.Filter{Maxed: p.Maxed, MinCount: p.MinCount}

	var options []Option
	for name, qualityChances := range chances {
		if rareGems[name] {
			continue
		}

		outcomes := make([]Outcome, 0, len(qualityChances))
		for qualityType, chance := range qualityChances {
			outcomes = append(outcomes, Outcome{
				Quality: qualityType,
				Chance:  chance,
				PriceEx: prices.FindPrice(gems, name, qualityType, filter),
			})
		}
		sort.Slice(outcomes, func(i, j int) bool {
			return outcomes[i].Quality < outcomes[j].Quality
		})

		cost := p.PrimeLensEx
		if strings.HasSuffix(name, " Support") {
			cost = p.SecondaryLensEx
		}
		if p.Maxed {
			cost += prices.FindPrice(gems, name, model.QualitySuperior,
				prices.Filter{Maxed: true, MinCount: p.MinCount})
		}

		guaranteed := true
		profit := -cost
		for _, o := range outcomes {
			profit += o.Chance * o.PriceEx
			if o.PriceEx <= cost {
				guaranteed = false
			}
		}

		if p.GuaranteedOnly && !guaranteed {
			continue
		}
		if profit <= 0 {
			continue
		}

		options = append(options, Option{
			Name:       name,
			Guaranteed: guaranteed,
			ProfitEx:   profit,
			Outcomes:   outcomes,
		})
	}

	sort.Slice(options, func(i, j int) bool {
		if options[i].ProfitEx != options[j].ProfitEx {
			return options[i].ProfitEx > options[j].ProfitEx
		}
		return options[i].Name < options[j].Name
	})

	return options
}

// BestLeveledGems ranks plain Superior 20/20 uncorrupted gems by chaos
// value, the gems most worth leveling for a straight sale.
func BestLeveledGems(gems []model.Gem, limit, minCount int) []model.Gem {
	var ok []model.Gem
	for _, gem := range gems {
		if gem.QualityType != model.QualitySuperior || rareGems[gem.Name] {
			continue
		}
		if gem.Corrupted || gem.Level < 20 || gem.Quality < 20 {
			continue
		}
		if gem.Count < minCount {
			continue
		}
		ok = append(ok, gem)
	}

	sort.Slice(ok, func(i, j int) bool {
		if ok[i].ChaosValue != ok[j].ChaosValue {
			return ok[i].ChaosValue > ok[j].ChaosValue
		}
		return ok[i].Name < ok[j].Name
	})

	if limit > 0 && len(ok) > limit {
		ok = ok[:limit]
	}
	return ok
}
