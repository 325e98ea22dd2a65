package photodis

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/uhecr/internal/nucleus"
	"github.com/san-kum/uhecr/internal/photonfield"
)

// scriptedSource replays a fixed sequence of draws.
type scriptedSource struct {
	vals  []float64
	calls int
}

func (s *scriptedSource) Float64() float64 {
	v := s.vals[s.calls%len(s.vals)]
	s.calls++
	return v
}

// uniform converts a target u in (0,1] into the Float64 value the
// engine maps onto it.
func uniform(u float64) float64 { return 1 - u }

func flat(v float64) []float64 {
	r := make([]float64, RateSamples)
	for i := range r {
		r[i] = v
	}
	return r
}

func testTable(channels map[tableKey][]Channel) *RateTable {
	return &RateTable{channels: channels}
}

func twoChannelTable(rate1, rate2 float64) *RateTable {
	return testTable(map[tableKey][]Channel{
		{26, 30}: {
			{Code: 100000, Emission: nucleus.DecodeChannel(100000), Rate: flat(rate1)},
			{Code: 10000, Emission: nucleus.DecodeChannel(10000), Rate: flat(rate2)},
		},
	})
}

func ironAt(gamma float64) *nucleus.Candidate {
	n := nucleus.Nuclide{A: 56, Z: 26}
	return nucleus.NewCandidate(n, gamma*n.RestEnergy(), 0)
}

func TestSelectInteractionNoChannels(t *testing.T) {
	src := &scriptedSource{vals: []float64{0.5}}
	pd := NewFromTable(photonfield.CMB, testTable(map[tableKey][]Channel{}), src)

	if _, ok := pd.SelectInteraction(ironAt(1e10)); ok {
		t.Error("expected no interaction for nuclide without channels")
	}
	if src.calls != 0 {
		t.Errorf("expected no random draws, got %d", src.calls)
	}
}

func TestSelectInteractionEnergyBounds(t *testing.T) {
	src := &scriptedSource{vals: []float64{0.5}}
	pd := NewFromTable(photonfield.CMB, twoChannelTable(1e-24, 1e-24), src)

	// The tabulated range is the open interval lg in (6, 14); the
	// boundaries themselves are excluded.
	excluded := []float64{1e5, 0.999999999e6, 1e6, 1e14, 1.000000001e14, 1e15}
	for _, gamma := range excluded {
		if _, ok := pd.SelectInteraction(ironAt(gamma)); ok {
			t.Errorf("gamma %g: expected no interaction out of range", gamma)
		}
	}

	included := []float64{math.Pow(10, 6.0001), 1e10, math.Pow(10, 13.9999)}
	for _, gamma := range included {
		if _, ok := pd.SelectInteraction(ironAt(gamma)); !ok {
			t.Errorf("gamma %g: expected interaction in range", gamma)
		}
	}

	// Redshift boosts the effective Lorentz factor: gamma that sits in
	// range at z=0 leaves it at z=1.
	n := nucleus.Nuclide{A: 56, Z: 26}
	high := nucleus.NewCandidate(n, 6e13*n.RestEnergy(), 1)
	if _, ok := pd.SelectInteraction(high); ok {
		t.Error("expected no interaction once (1+z) boosts gamma out of range")
	}
	low := nucleus.NewCandidate(n, 6e5*n.RestEnergy(), 1)
	if _, ok := pd.SelectInteraction(low); !ok {
		t.Error("expected (1+z) boost to bring gamma into range")
	}
}

func TestSelectInteractionPicksSmallestDistance(t *testing.T) {
	// Equal draws, second channel twice the rate: it samples half the
	// free path and must win.
	src := &scriptedSource{vals: []float64{uniform(math.Exp(-1)), uniform(math.Exp(-1))}}
	pd := NewFromTable(photonfield.CMB, twoChannelTable(1e-24, 2e-24), src)

	c := ironAt(1e10)
	in, ok := pd.SelectInteraction(c)
	if !ok {
		t.Fatal("expected an interaction")
	}
	if in.Channel != 10000 {
		t.Errorf("expected channel 10000 to win, got %d", in.Channel)
	}
	want := 1 / 2e-24 // -ln(e^-1)/rate at z=0
	if math.Abs(in.Distance-want)/want > 1e-12 {
		t.Errorf("expected distance %g, got %g", want, in.Distance)
	}
	if src.calls != 2 {
		t.Errorf("expected one draw per channel, got %d", src.calls)
	}

	stored, ok := c.Interaction(pd.Name())
	if !ok || stored != in {
		t.Error("expected interaction recorded on candidate")
	}
}

func TestSelectInteractionTieKeepsFirst(t *testing.T) {
	// Identical rates and identical draws sample identical distances;
	// strict < must keep the first channel seen.
	src := &scriptedSource{vals: []float64{uniform(0.5)}}
	pd := NewFromTable(photonfield.CMB, twoChannelTable(1e-24, 1e-24), src)

	in, ok := pd.SelectInteraction(ironAt(1e10))
	if !ok {
		t.Fatal("expected an interaction")
	}
	if in.Channel != 100000 {
		t.Errorf("expected first channel to keep the tie, got %d", in.Channel)
	}
}

func TestSelectInteractionRedshiftScaling(t *testing.T) {
	n := nucleus.Nuclide{A: 56, Z: 26}

	sample := func(z float64) nucleus.Interaction {
		src := &scriptedSource{vals: []float64{uniform(math.Exp(-1))}}
		pd := NewFromTable(photonfield.CMB, testTable(map[tableKey][]Channel{
			{26, 30}: {{Code: 100000, Emission: nucleus.DecodeChannel(100000), Rate: flat(1e-24)}},
		}), src)
		c := nucleus.NewCandidate(n, 1e10*n.RestEnergy(), z)
		in, ok := pd.SelectInteraction(c)
		if !ok {
			t.Fatalf("z=%g: expected an interaction", z)
		}
		return in
	}

	d0 := sample(0).Distance
	d1 := sample(1).Distance

	// Flat rate curve: only the density scaling and the comoving
	// conversion act. CMB density grows as (1+z)^3, so the comoving
	// distance shrinks as (1+z)/(1+z)^3.
	want := d0 * 2 / 8
	if math.Abs(d1-want)/want > 1e-12 {
		t.Errorf("expected z=1 distance %g, got %g", want, d1)
	}
	if d1 >= d0 {
		t.Error("expected distance to shrink with growing photon density")
	}
}

func TestSelectInteractionVanishedBackground(t *testing.T) {
	// The infrared background is absent beyond z=4; with no target
	// photons there is nothing to sample and nothing to store.
	src := &scriptedSource{vals: []float64{0.5}}
	pd := NewFromTable(photonfield.IRB, twoChannelTable(1e-24, 1e-24), src)

	n := nucleus.Nuclide{A: 56, Z: 26}
	c := nucleus.NewCandidate(n, 1e7*n.RestEnergy(), 5)

	in, ok := pd.SelectInteraction(c)
	if ok {
		t.Fatalf("expected no interaction on a vanished background, got %+v", in)
	}
	if _, stored := c.Interaction(pd.Name()); stored {
		t.Error("expected nothing recorded on the candidate")
	}
	if src.calls != 0 {
		t.Errorf("expected no random draws, got %d", src.calls)
	}
}

func TestPerformSingleProton(t *testing.T) {
	pd := NewFromTable(photonfield.CMB, twoChannelTable(1e-24, 1e-24), nil)

	n := nucleus.Nuclide{A: 56, Z: 26}
	c := nucleus.NewCandidate(n, 1e20, 0)
	c.SetInteraction(pd.Name(), nucleus.Interaction{Distance: 1e22, Channel: 10000})

	if err := pd.Perform(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Current.A != 55 || c.Current.Z != 25 {
		t.Errorf("expected remnant Mn-55, got %v", c.Current.Nuclide)
	}
	epa := 1e20 / 56.0
	if math.Abs(c.Current.Energy-epa*55)/1e20 > 1e-12 {
		t.Errorf("expected remnant energy %g, got %g", epa*55, c.Current.Energy)
	}
	if len(c.Secondaries) != 1 {
		t.Fatalf("expected one secondary, got %d", len(c.Secondaries))
	}
	sec := c.Secondaries[0]
	if sec.Nuclide != nucleus.Proton {
		t.Errorf("expected a proton, got %v", sec.Nuclide)
	}
	if math.Abs(sec.Energy-epa)/epa > 1e-12 {
		t.Errorf("expected proton energy %g, got %g", epa, sec.Energy)
	}

	total := c.Current.Energy + sec.Energy
	if math.Abs(total-1e20)/1e20 > 1e-12 {
		t.Errorf("energy not conserved: %g != 1e20", total)
	}
	if !c.Active() {
		t.Error("expected candidate to stay active")
	}
	if _, ok := c.Interaction(pd.Name()); ok {
		t.Error("expected pending interaction consumed")
	}
}

func TestPerformConservesNucleonsAndCharge(t *testing.T) {
	pd := NewFromTable(photonfield.CMB, twoChannelTable(1e-24, 1e-24), nil)

	for _, code := range []int{100000, 10000, 1000, 100, 10, 1, 210001, 320010} {
		n := nucleus.Nuclide{A: 56, Z: 26}
		c := nucleus.NewCandidate(n, 1e20, 0)
		c.SetInteraction(pd.Name(), nucleus.Interaction{Distance: 1, Channel: code})

		if err := pd.Perform(c); err != nil {
			t.Fatalf("channel %d: unexpected error: %v", code, err)
		}

		sumA, sumZ, sumE := c.Current.A, c.Current.Z, c.Current.Energy
		for _, s := range c.Secondaries {
			sumA += s.A
			sumZ += s.Z
			sumE += s.Energy
		}
		if sumA != 56 {
			t.Errorf("channel %d: mass not conserved: %d", code, sumA)
		}
		if sumZ != 26 {
			t.Errorf("channel %d: charge not conserved: %d", code, sumZ)
		}
		if math.Abs(sumE-1e20)/1e20 > 1e-9 {
			t.Errorf("channel %d: energy not conserved: %g", code, sumE)
		}
	}
}

func TestPerformExhaustsParent(t *testing.T) {
	pd := NewFromTable(photonfield.CMB, twoChannelTable(1e-24, 1e-24), nil)

	c := nucleus.NewCandidate(nucleus.Helium4, 4e19, 0)
	c.SetInteraction(pd.Name(), nucleus.Interaction{Distance: 1, Channel: 1})

	if err := pd.Perform(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Active() {
		t.Error("expected fully consumed parent to be deactivated")
	}
	if len(c.Secondaries) != 1 || c.Secondaries[0].Nuclide != nucleus.Helium4 {
		t.Fatalf("expected a single helium-4 secondary, got %v", c.Secondaries)
	}
	if math.Abs(c.Secondaries[0].Energy-4e19)/4e19 > 1e-12 {
		t.Errorf("expected secondary to carry the full energy, got %g", c.Secondaries[0].Energy)
	}
}

func TestPerformWithoutPending(t *testing.T) {
	pd := NewFromTable(photonfield.CMB, twoChannelTable(1e-24, 1e-24), nil)

	c := nucleus.NewCandidate(nucleus.Nuclide{A: 56, Z: 26}, 1e20, 0)
	if err := pd.Perform(c); !errors.Is(err, ErrNoPendingInteraction) {
		t.Errorf("expected ErrNoPendingInteraction, got %v", err)
	}
}

func TestEnergyLossLength(t *testing.T) {
	table := testTable(map[tableKey][]Channel{
		{26, 30}: {
			{Code: 100000, Emission: nucleus.DecodeChannel(100000), Rate: flat(1e-24)},
			{Code: 1, Emission: nucleus.DecodeChannel(1), Rate: flat(2e-24)},
		},
	})
	pd := NewFromTable(photonfield.CMB, table, nil)

	n := nucleus.Nuclide{A: 56, Z: 26}
	e := 1e10 * n.RestEnergy()

	// One channel strips 1 of 56 nucleons, the other 4 of 56.
	wantRate := 1e-24*(1.0/56) + 2e-24*(4.0/56)
	got := pd.EnergyLossLength(n, e)
	if math.Abs(got-1/wantRate)/(1/wantRate) > 1e-12 {
		t.Errorf("expected loss length %g, got %g", 1/wantRate, got)
	}

	if !math.IsInf(pd.EnergyLossLength(n, 1e5*n.RestEnergy()), 1) {
		t.Error("expected infinite loss length below the tabulated range")
	}
	if !math.IsInf(pd.EnergyLossLength(nucleus.Nuclide{A: 12, Z: 6}, e), 1) {
		t.Error("expected infinite loss length for nuclide without data")
	}

	wantTotal := 1 / (1e-24 + 2e-24)
	if got := pd.InteractionLength(n, e); math.Abs(got-wantTotal)/wantTotal > 1e-12 {
		t.Errorf("expected interaction length %g, got %g", wantTotal, got)
	}
}
