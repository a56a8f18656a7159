package report

import (
	"strings"
	"testing"

	"github.com/guarzo/poegemgap/internal/analysis"
	"github.com/guarzo/poegemgap/internal/model"
)

func sampleOptions() []analysis.Option {
	return []analysis.Option{
		{
			Name:       "Fireball",
			Guaranteed: true,
			ProfitEx:   3.0,
			Outcomes: []analysis.Outcome{
				{Quality: "Anomalous", Chance: 0.25, PriceEx: 2.0},
				{Quality: "Divergent", Chance: 0.75, PriceEx: 4.0},
			},
		},
		{
			Name:     "Arc",
			ProfitEx: 0.5,
			Outcomes: []analysis.Outcome{
				{Quality: "Divergent", Chance: 1.0, PriceEx: 1.0},
			},
		},
	}
}

func TestWriteOptions(t *testing.T) {
	var sb strings.Builder
	WriteOptions(&sb, "Regrading level 1 gems", sampleOptions(), 10)
	out := sb.String()

	if !strings.Contains(out, "Regrading level 1 gems:") {
		t.Errorf("missing heading in output:\n%s", out)
	}
	if !strings.Contains(out, "!!! Fireball: 3.00 ex (25% Anomalous 2.0 ex, 75% Divergent 4.0 ex)") {
		t.Errorf("unexpected guaranteed line:\n%s", out)
	}
	if !strings.Contains(out, "  Arc: 0.50 ex") || strings.Contains(out, "!!! Arc") {
		t.Errorf("unexpected non-guaranteed line:\n%s", out)
	}
}

func TestWriteOptions_Limit(t *testing.T) {
	var sb strings.Builder
	WriteOptions(&sb, "Regrading level 1 gems", sampleOptions(), 1)

	if strings.Contains(sb.String(), "Arc") {
		t.Errorf("limit 1 should drop the second option:\n%s", sb.String())
	}
}

func TestWriteCurrency(t *testing.T) {
	var sb strings.Builder
	WriteCurrency(&sb, analysis.LensCosts{ExaltChaos: 100, PrimeChaos: 50, SecondaryChaos: 60})
	out := sb.String()

	for _, want := range []string{"Exalt: 100.0 c", "Primary: 0.5 ex (50.0 c)", "Secondary: 0.6 ex (60.0 c)"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestWriteLeveledGems(t *testing.T) {
	var sb strings.Builder
	WriteLeveledGems(&sb, []model.Gem{{Name: "Arc", ChaosValue: 150}})

	if !strings.Contains(sb.String(), "  Arc: 150.0 c") {
		t.Errorf("unexpected output:\n%s", sb.String())
	}
}

func TestEscapeCSVCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Fireball", "Fireball"},
		{"=cmd()", "'=cmd()"},
		{"+1", "'+1"},
		{"-profit", "'-profit"},
		{"@gem", "'@gem"},
		{"\tArc", "'\tArc"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := EscapeCSVCell(tt.in); got != tt.want {
			t.Errorf("EscapeCSVCell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteOptionsCSV(t *testing.T) {
	options := sampleOptions()
	options[0].Name = "=HYPERLINK(evil)"

	var sb strings.Builder
	if err := WriteOptionsCSV(&sb, options); err != nil {
		t.Fatalf("WriteOptionsCSV failed: %v", err)
	}
	out := sb.String()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines:\n%s", len(lines), out)
	}
	if lines[0] != "gem,guaranteed,profit_ex,outcomes" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.Contains(out, "'=HYPERLINK(evil)") {
		t.Errorf("formula cell not escaped:\n%s", out)
	}
	if !strings.Contains(out, "Anomalous 0.250 2.00; Divergent 0.750 4.00") {
		t.Errorf("outcome breakdown missing:\n%s", out)
	}
}
