package model

// Quality types as they appear as name prefixes on poe.ninja gem listings.
const (
	QualitySuperior   = "Superior"
	QualityAnomalous  = "Anomalous"
	QualityDivergent  = "Divergent"
	QualityPhantasmal = "Phantasmal"
)

// AltQualities are the prefixes a listing may carry besides plain Superior,
// in the order they are matched against listing names.
var AltQualities = []string{QualityAnomalous, QualityDivergent, QualityPhantasmal}

// Gem is one normalized price line for a skill gem listing.
// Name has the quality and Vaal prefixes already stripped.
type Gem struct {
	Name         string
	QualityType  string
	Vaal         bool
	Corrupted    bool
	Level        int
	Quality      int
	ChaosValue   float64
	ExaltedValue float64
	Count        int
}

// QualityChances maps gem name -> alternate quality -> chance of rolling it
// with a regrading lens. Chances for a gem sum to 1.
type QualityChances map[string]map[string]float64

// CurrencyRates holds chaos-equivalent buy rates keyed by currency type name.
type CurrencyRates map[string]float64
