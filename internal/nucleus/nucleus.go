package nucleus

import (
	"fmt"
	"strconv"
	"strings"
)

// NucleonRestEnergy is the average nucleon rest energy in eV (one
// atomic mass unit times c^2).
const NucleonRestEnergy = 931.494e6

// Nuclide identifies a nucleus by mass number A and charge number Z.
type Nuclide struct {
	A int
	Z int
}

// Common light species emitted by photo-disintegration.
var (
	Neutron  = Nuclide{A: 1, Z: 0}
	Proton   = Nuclide{A: 1, Z: 1}
	Deuteron = Nuclide{A: 2, Z: 1}
	Triton   = Nuclide{A: 3, Z: 1}
	Helium3  = Nuclide{A: 3, Z: 2}
	Helium4  = Nuclide{A: 4, Z: 2}
)

// N returns the neutron number A - Z.
func (n Nuclide) N() int { return n.A - n.Z }

// RestEnergy returns the nuclide rest energy in eV.
func (n Nuclide) RestEnergy() float64 {
	return float64(n.A) * NucleonRestEnergy
}

// symbols covers the charge range of the disintegration tables, Z in [0, 30].
var symbols = [31]string{
	"n", "H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
}

func (n Nuclide) String() string {
	if n.Z >= 0 && n.Z < len(symbols) {
		return fmt.Sprintf("%s-%d", symbols[n.Z], n.A)
	}
	return fmt.Sprintf("Z%d-%d", n.Z, n.A)
}

// Parse reads a nuclide from symbol-mass ("Fe56", "fe-56", "he4") or
// charge-mass ("26-56") notation.
func Parse(s string) (Nuclide, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Nuclide{}, fmt.Errorf("nucleus: empty nuclide")
	}

	if i := strings.IndexByte(t, '-'); i > 0 {
		if z, err := strconv.Atoi(t[:i]); err == nil {
			a, err := strconv.Atoi(t[i+1:])
			if err != nil {
				return Nuclide{}, fmt.Errorf("nucleus: bad mass number in %q", s)
			}
			return Nuclide{A: a, Z: z}, nil
		}
		t = t[:i] + t[i+1:]
	}

	j := len(t)
	for j > 0 && t[j-1] >= '0' && t[j-1] <= '9' {
		j--
	}
	sym, digits := t[:j], t[j:]
	if sym == "" || digits == "" {
		return Nuclide{}, fmt.Errorf("nucleus: cannot parse nuclide %q", s)
	}
	a, err := strconv.Atoi(digits)
	if err != nil {
		return Nuclide{}, fmt.Errorf("nucleus: bad mass number in %q", s)
	}
	for z, name := range symbols {
		if strings.EqualFold(sym, name) {
			return Nuclide{A: a, Z: z}, nil
		}
	}
	return Nuclide{}, fmt.Errorf("nucleus: unknown element symbol %q", sym)
}

// Particle is a nuclide with a total energy in eV.
type Particle struct {
	Nuclide
	Energy float64
}

// LorentzFactor is the ratio of total energy to rest energy.
func (p Particle) LorentzFactor() float64 {
	return p.Energy / p.RestEnergy()
}
