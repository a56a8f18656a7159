package prices

import (
	"strings"
	"testing"
)

func TestDecodeCurrency(t *testing.T) {
	payload := `{"lines":[
		{"currencyTypeName":"Exalted Orb","chaosEquivalent":145.5},
		{"currencyTypeName":"Prime Regrading Lens","chaosEquivalent":70},
		{"currencyTypeName":"Mirror Shard","pay":{"value":1}}
	]}`

	rates, err := DecodeCurrency(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("DecodeCurrency failed: %v", err)
	}

	if got := rates["Exalted Orb"]; got != 145.5 {
		t.Errorf("Exalted Orb rate = %v, want 145.5", got)
	}
	if got := rates["Prime Regrading Lens"]; got != 70 {
		t.Errorf("Prime Regrading Lens rate = %v, want 70", got)
	}
	if _, ok := rates["Mirror Shard"]; ok {
		t.Error("lines without chaosEquivalent must be skipped")
	}
}

func TestDecodeCurrency_BadJSON(t *testing.T) {
	if _, err := DecodeCurrency(strings.NewReader("[]")); err == nil {
		t.Fatal("expected error for wrong top-level JSON shape")
	}
}
