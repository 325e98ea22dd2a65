package nucleus

// Interaction is a pending interaction sampled for a candidate: the
// comoving distance to the interaction point in metres and the channel
// code to apply there.
type Interaction struct {
	Distance float64
	Channel  int
}

// Candidate is a propagating particle as seen by the interaction
// engines. Pending interactions are keyed by the name of the engine
// that sampled them; applying any interaction clears them all, since a
// performed interaction invalidates every competing sample.
type Candidate struct {
	Current     Particle
	Redshift    float64
	Secondaries []Particle

	active       bool
	interactions map[string]Interaction
}

// NewCandidate returns an active candidate at the given redshift.
func NewCandidate(n Nuclide, energy, redshift float64) *Candidate {
	return &Candidate{
		Current:      Particle{Nuclide: n, Energy: energy},
		Redshift:     redshift,
		active:       true,
		interactions: make(map[string]Interaction),
	}
}

func (c *Candidate) Active() bool     { return c.active }
func (c *Candidate) SetActive(a bool) { c.active = a }

// SetInteraction records a pending interaction under the engine name,
// replacing any previous sample by that engine.
func (c *Candidate) SetInteraction(name string, in Interaction) {
	if c.interactions == nil {
		c.interactions = make(map[string]Interaction)
	}
	c.interactions[name] = in
}

// Interaction returns the pending interaction recorded under name.
func (c *Candidate) Interaction(name string) (Interaction, bool) {
	in, ok := c.interactions[name]
	return in, ok
}

// ClearInteractions drops all pending interactions.
func (c *Candidate) ClearInteractions() {
	for k := range c.interactions {
		delete(c.interactions, k)
	}
}

// AddSecondary appends an emitted particle with the given identity and
// energy in eV.
func (c *Candidate) AddSecondary(n Nuclide, energy float64) {
	c.Secondaries = append(c.Secondaries, Particle{Nuclide: n, Energy: energy})
}
