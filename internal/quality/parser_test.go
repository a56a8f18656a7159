package quality

import (
	"math"
	"strings"
	"testing"
)

const qualityPage = `<html><body>
<div id="GrantedEffectQualityStatsQualityGem">
<table>
<thead><tr><th>Gem</th><th>Quality</th><th>Stats</th><th>Weight</th></tr></thead>
<tbody>
<tr><td>Fireball</td><td>Superior</td><td>+0.5% damage</td><td>50</td></tr>
<tr><td>Fireball</td><td>Anomalous</td><td>+1% aoe</td><td>50</td></tr>
<tr><td>Fireball</td><td>Divergent</td><td>+2% speed</td><td>100</td></tr>
<tr><td>Added Fire Damage Support</td><td>Anomalous</td><td>+1% fire</td><td>100</td></tr>
</tbody>
</table>
</div>
</body></html>`

func TestParse_QualityChances(t *testing.T) {
	chances, err := Parse(strings.NewReader(qualityPage))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	fireball, ok := chances["Fireball"]
	if !ok {
		t.Fatal("expected Fireball in chances")
	}
	if got := fireball["Anomalous"]; math.Abs(got-1.0/3.0) > 1e-9 {
		t.Errorf("Anomalous chance = %v, want 1/3", got)
	}
	if got := fireball["Divergent"]; math.Abs(got-2.0/3.0) > 1e-9 {
		t.Errorf("Divergent chance = %v, want 2/3", got)
	}
	if _, ok := fireball["Superior"]; ok {
		t.Error("Superior rows must not contribute outcomes")
	}

	support := chances["Added Fire Damage Support"]
	if got := support["Anomalous"]; got != 1.0 {
		t.Errorf("single-outcome chance = %v, want 1", got)
	}
}

func TestParse_MissingTable(t *testing.T) {
	_, err := Parse(strings.NewReader("<html><body><p>maintenance</p></body></html>"))
	if err == nil {
		t.Fatal("expected error for page without quality table")
	}
}

func TestParse_SkipsMalformedRows(t *testing.T) {
	page := `<div id="GrantedEffectQualityStatsQualityGem"><table><tbody>
<tr><td>Fireball</td><td>Anomalous</td><td>x</td><td>not-a-number</td></tr>
<tr><td>Fireball</td><td>Divergent</td><td>x</td><td>100</td></tr>
</tbody></table></div>`

	chances, err := Parse(strings.NewReader(page))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := chances["Fireball"]["Divergent"]; got != 1.0 {
		t.Errorf("Divergent chance = %v, want 1 after skipping bad row", got)
	}
}
