package nucleus

// Emission is a disintegration channel decoded from its wire code: the
// number of each light species stripped off the parent nucleus in one
// event.
type Emission struct {
	Neutrons  int
	Protons   int
	Deuterons int
	Tritons   int
	He3       int
	He4       int
}

// DecodeChannel extracts the six per-species counts from a channel
// code by place value. The wire protocol is one decimal digit per
// species, neutrons most significant, helium-4 least.
func DecodeChannel(code int) Emission {
	return Emission{
		Neutrons:  code / 100000 % 10,
		Protons:   code / 10000 % 10,
		Deuterons: code / 1000 % 10,
		Tritons:   code / 100 % 10,
		He3:       code / 10 % 10,
		He4:       code % 10,
	}
}

// DeltaA is the mass-number change of the parent, always <= 0.
func (e Emission) DeltaA() int {
	return -e.NucleonLoss()
}

// DeltaZ is the charge-number change of the parent, always <= 0.
func (e Emission) DeltaZ() int {
	return -(e.Protons + e.Deuterons + e.Tritons + 2*e.He3 + 2*e.He4)
}

// NucleonLoss is the total number of nucleons carried away by the
// emitted species.
func (e Emission) NucleonLoss() int {
	return e.Neutrons + e.Protons + 2*e.Deuterons + 3*e.Tritons + 3*e.He3 + 4*e.He4
}

// Product pairs an emitted species with its multiplicity.
type Product struct {
	Nuclide Nuclide
	Count   int
}

// Products lists the emitted species with nonzero counts, in wire
// digit order.
func (e Emission) Products() []Product {
	all := []Product{
		{Neutron, e.Neutrons},
		{Proton, e.Protons},
		{Deuteron, e.Deuterons},
		{Triton, e.Tritons},
		{Helium3, e.He3},
		{Helium4, e.He4},
	}
	out := make([]Product, 0, len(all))
	for _, p := range all {
		if p.Count > 0 {
			out = append(out, p)
		}
	}
	return out
}
