package photonfield

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Kind
	}{
		{"CMB", CMB},
		{"cmb", CMB},
		{"IRB", IRB},
		{"CMB_IRB", CMBIRB},
		{"cmb+irb", CMBIRB},
	}

	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Parse(%q): expected %v, got %v", c.in, c.want, got)
		}
	}

	if _, err := Parse("EBL"); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestSourcesCoverAllKinds(t *testing.T) {
	for _, k := range Kinds() {
		if _, ok := k.DataFile(); !ok {
			t.Errorf("kind %v has no data file", k)
		}
		if _, ok := k.Description(); !ok {
			t.Errorf("kind %v has no description", k)
		}
	}

	if _, ok := Kind(99).DataFile(); ok {
		t.Error("expected no data file for unknown kind")
	}
}

func TestScaling(t *testing.T) {
	if got := Scaling(CMB, 0); got != 1 {
		t.Errorf("expected CMB scaling 1 at z=0, got %f", got)
	}
	if got := Scaling(CMB, 1); math.Abs(got-8) > 1e-12 {
		t.Errorf("expected CMB scaling 8 at z=1, got %f", got)
	}
	if Scaling(IRB, 0.5) >= Scaling(IRB, 1.0) {
		t.Error("expected IRB scaling to grow below z=1.3")
	}
	if got := Scaling(IRB, 5); got != 0 {
		t.Errorf("expected IRB scaling 0 beyond z=4, got %f", got)
	}
	if got := Scaling(CMBIRB, 1); math.Abs(got-8) > 1e-12 {
		t.Errorf("expected combined field to follow CMB law, got %f", got)
	}
}
