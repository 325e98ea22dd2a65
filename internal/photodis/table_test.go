package photodis

import (
	"fmt"
	"strings"
	"testing"
)

func recordLine(z, a, code int, rates []float64) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d %d", z, a, code)
	for _, r := range rates {
		fmt.Fprintf(&sb, " %g", r)
	}
	return sb.String()
}

func rampRates() []float64 {
	rates := make([]float64, RateSamples)
	for i := range rates {
		rates[i] = float64(i + 1)
	}
	return rates
}

func TestReadRateTableRoundTrip(t *testing.T) {
	rates := rampRates()
	src := strings.Join([]string{
		"# photo-disintegration rates, 1/Mpc",
		recordLine(26, 56, 100000, rates),
		recordLine(26, 56, 10000, rates),
		"",
		recordLine(2, 4, 10000, rates),
	}, "\n")

	table, err := ReadRateTable(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if table.Nuclides() != 2 {
		t.Errorf("expected 2 nuclides, got %d", table.Nuclides())
	}

	iron := table.Channels(26, 30)
	if len(iron) != 2 {
		t.Fatalf("expected 2 channels for (26,30), got %d", len(iron))
	}
	if iron[0].Code != 100000 || iron[1].Code != 10000 {
		t.Errorf("expected file order preserved, got %d, %d", iron[0].Code, iron[1].Code)
	}

	for _, ch := range iron {
		if len(ch.Rate) != RateSamples {
			t.Fatalf("expected %d samples, got %d", RateSamples, len(ch.Rate))
		}
		for i, r := range ch.Rate {
			want := rates[i] / Mpc
			if r != want {
				t.Fatalf("sample %d: expected %g, got %g", i, want, r)
			}
		}
	}
}

func TestReadRateTableAbsentNuclide(t *testing.T) {
	table, err := ReadRateTable(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := table.Channels(26, 30); len(got) != 0 {
		t.Errorf("expected no channels for absent nuclide, got %d", len(got))
	}
	// Out-of-range keys are defined "no data" results, not faults.
	if got := table.Channels(-3, 500); len(got) != 0 {
		t.Errorf("expected no channels for out-of-range key, got %d", len(got))
	}
}

func TestReadRateTableMalformed(t *testing.T) {
	rates := rampRates()
	cases := []struct {
		name string
		src  string
	}{
		{"short line", "26 56 100000 1.0 2.0"},
		{"bad charge", strings.Replace(recordLine(26, 56, 100000, rates), "26 ", "Fe ", 1)},
		{"bad rate", strings.Replace(recordLine(26, 56, 100000, rates), " 5 ", " five ", 1)},
		{"negative channel", recordLine(26, 56, -1, rates)},
		{"mass below charge", recordLine(26, 20, 100000, rates)},
	}

	for _, c := range cases {
		if _, err := ReadRateTable(strings.NewReader(c.src)); err == nil {
			t.Errorf("%s: expected error, got none", c.name)
		}
	}
}

func TestLoadRateTableMissingFile(t *testing.T) {
	if _, err := LoadRateTable("testdata/does_not_exist.txt"); err == nil {
		t.Error("expected error for missing data source")
	}
}
