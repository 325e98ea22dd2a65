package photodis

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/san-kum/uhecr/internal/interp"
	"github.com/san-kum/uhecr/internal/nucleus"
	"github.com/san-kum/uhecr/internal/photonfield"
)

// Source yields uniform variates in [0, 1). *math/rand.Rand satisfies
// it; tests script it with fixed sequences.
type Source interface {
	Float64() float64
}

// PhotoDisintegration samples and applies photo-disintegration
// interactions against one photon background. The rate table is
// shared and read-only; the random source belongs to a single worker.
type PhotoDisintegration struct {
	field photonfield.Kind
	name  string
	table *RateTable
	rng   Source
}

// New loads the rate table for the given photon field from dataDir and
// returns an engine drawing from src.
func New(field photonfield.Kind, dataDir string, src Source) (*PhotoDisintegration, error) {
	file, ok := field.DataFile()
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPhotonField, field)
	}
	table, err := LoadRateTable(filepath.Join(dataDir, file))
	if err != nil {
		return nil, err
	}
	return NewFromTable(field, table, src), nil
}

// NewFromTable wraps an already-loaded rate table.
func NewFromTable(field photonfield.Kind, table *RateTable, src Source) *PhotoDisintegration {
	name, ok := field.Description()
	if !ok {
		name = fmt.Sprintf("PhotoDisintegration: %v", field)
	}
	return &PhotoDisintegration{field: field, name: name, table: table, rng: src}
}

// Name is the description string keying pending interactions on
// candidates.
func (pd *PhotoDisintegration) Name() string { return pd.name }

// Field returns the photon background this engine models.
func (pd *PhotoDisintegration) Field() photonfield.Kind { return pd.field }

// Table exposes the loaded rate table for diagnostics.
func (pd *PhotoDisintegration) Table() *RateTable { return pd.table }

// Fork returns an engine sharing the immutable rate table but drawing
// from its own source, for use on another worker goroutine.
func (pd *PhotoDisintegration) Fork(src Source) *PhotoDisintegration {
	return &PhotoDisintegration{field: pd.field, name: pd.name, table: pd.table, rng: src}
}

// SelectInteraction samples the distance to the next disintegration of
// the candidate's current nucleus and the winning channel. Competing
// channels race as independent exponential processes; the smallest
// sampled free path wins, with strict < keeping the first seen on
// ties. The sampled proper distance is corrected for the photon
// density at the candidate's redshift and converted to a comoving
// distance. The result is stored on the candidate under this engine's
// name.
//
// It returns false, consuming no random draws, when no channels are
// tabulated for the nuclide or the effective log10(Lorentz factor)
// lies outside the open interval (6, 14).
func (pd *PhotoDisintegration) SelectInteraction(c *nucleus.Candidate) (nucleus.Interaction, bool) {
	cur := c.Current
	channels := pd.table.Channels(cur.Z, cur.N())
	if len(channels) == 0 {
		return nucleus.Interaction{}, false
	}

	// Background photon energy grows with (1+z); boosting the Lorentz
	// factor for the lookup is equivalent. The bounds are compared on
	// the Lorentz factor itself so 10^6 and 10^14 are excluded exactly.
	z := c.Redshift
	gamma := cur.LorentzFactor() * (1 + z)
	if gamma <= gammaMin || gamma >= gammaMax {
		return nucleus.Interaction{}, false
	}
	lg := math.Log10(gamma)

	// A vanished background (the infrared field beyond its formation
	// epoch) provides no target photons: nothing to sample.
	scale := photonfield.Scaling(pd.field, z)
	if scale <= 0 {
		return nucleus.Interaction{}, false
	}

	best := nucleus.Interaction{Distance: math.MaxFloat64}
	for _, ch := range channels {
		rate := interp.Equidistant(lg, LgMin, LgMax, ch.Rate)
		// Map [0,1) onto (0,1] so the log never sees zero.
		d := -math.Log(1-pd.rng.Float64()) / rate
		if d < best.Distance {
			best.Distance = d
			best.Channel = ch.Code
		}
	}

	// Interaction length scales with 1 / photon density.
	best.Distance /= scale
	best.Distance *= 1 + z

	c.SetInteraction(pd.name, best)
	return best, true
}

// Perform applies the candidate's pending interaction: the parent
// nucleus loses the emitted nucleons and the matching share of its
// energy, and one secondary per emitted particle is appended, each
// carrying energy-per-nucleon times its mass number. A parent reduced
// to A <= 0 is deactivated with no remnant. All pending interactions
// are cleared.
func (pd *PhotoDisintegration) Perform(c *nucleus.Candidate) error {
	in, ok := c.Interaction(pd.name)
	if !ok {
		return fmt.Errorf("%w for %q", ErrNoPendingInteraction, pd.name)
	}
	c.ClearInteractions()

	em := nucleus.DecodeChannel(in.Channel)
	cur := c.Current
	epa := cur.Energy / float64(cur.A)

	newA := cur.A + em.DeltaA()
	if newA > 0 {
		c.Current = nucleus.Particle{
			Nuclide: nucleus.Nuclide{A: newA, Z: cur.Z + em.DeltaZ()},
			Energy:  epa * float64(newA),
		}
	} else {
		c.SetActive(false)
	}

	for _, p := range em.Products() {
		for i := 0; i < p.Count; i++ {
			c.AddSecondary(p.Nuclide, epa*float64(p.Nuclide.A))
		}
	}
	return nil
}

// EnergyLossLength returns the mean free path for energy loss of the
// nuclide at total energy e in eV: the reciprocal of the channel rates
// weighted by the fraction of nucleons each strips. It is infinite
// when no channels are tabulated or the energy is out of range.
func (pd *PhotoDisintegration) EnergyLossLength(n nucleus.Nuclide, e float64) float64 {
	channels := pd.table.Channels(n.Z, n.N())
	if len(channels) == 0 {
		return math.Inf(1)
	}

	gamma := e / n.RestEnergy()
	if gamma <= gammaMin || gamma >= gammaMax {
		return math.Inf(1)
	}
	lg := math.Log10(gamma)

	lossRate := 0.0
	for _, ch := range channels {
		rate := interp.Equidistant(lg, LgMin, LgMax, ch.Rate)
		lossRate += rate * float64(ch.Emission.NucleonLoss()) / float64(n.A)
	}
	return 1 / lossRate
}

// InteractionLength returns the mean free path against disintegration
// through any channel, without loss weighting.
func (pd *PhotoDisintegration) InteractionLength(n nucleus.Nuclide, e float64) float64 {
	channels := pd.table.Channels(n.Z, n.N())
	if len(channels) == 0 {
		return math.Inf(1)
	}

	gamma := e / n.RestEnergy()
	if gamma <= gammaMin || gamma >= gammaMax {
		return math.Inf(1)
	}
	lg := math.Log10(gamma)

	total := 0.0
	for _, ch := range channels {
		total += interp.Equidistant(lg, LgMin, LgMax, ch.Rate)
	}
	return 1 / total
}
