// Package prop drives candidates through the photon background: it
// repeatedly asks the interaction engine for the next disintegration,
// advances the candidate, and applies the interaction, until the
// nucleus is exhausted, drops out of the tabulated energy range, or
// exceeds the distance budget.
package prop

import (
	"context"
	"fmt"

	"github.com/san-kum/uhecr/internal/nucleus"
	"github.com/san-kum/uhecr/internal/photodis"
)

// Event records one disintegration along a trajectory. Distances are
// comoving metres from the injection point.
type Event struct {
	Distance float64
	Channel  int
	Before   nucleus.Particle
	After    nucleus.Particle
}

// Result summarizes one propagated candidate.
type Result struct {
	Injected    nucleus.Particle
	Final       nucleus.Particle
	Secondaries []nucleus.Particle
	Events      []Event
	Distance    float64
	Survived    bool
	Exhausted   bool
}

// Metric accumulates a statistic over propagation events.
type Metric interface {
	Name() string
	Observe(ev Event)
	Value() float64
	Reset()
}

// Observer is notified of every disintegration event.
type Observer interface {
	OnEvent(ev Event)
}

// Config bounds a propagation run.
type Config struct {
	// MaxDistance is the comoving distance budget in metres.
	MaxDistance float64
	// MaxEvents caps the number of disintegrations per candidate.
	MaxEvents int
}

// DefaultConfig allows 1 Gpc of travel and effectively unlimited
// events (a nucleus can disintegrate at most A times).
func DefaultConfig() Config {
	return Config{MaxDistance: 1000 * photodis.Mpc, MaxEvents: 1000}
}

// Propagator runs candidates against a single interaction engine.
type Propagator struct {
	engine    *photodis.PhotoDisintegration
	metrics   []Metric
	observers []Observer
}

func New(engine *photodis.PhotoDisintegration) *Propagator {
	return &Propagator{engine: engine}
}

func (p *Propagator) AddMetric(m Metric)     { p.metrics = append(p.metrics, m) }
func (p *Propagator) AddObserver(o Observer) { p.observers = append(p.observers, o) }

// Engine returns the interaction engine this propagator drives.
func (p *Propagator) Engine() *photodis.PhotoDisintegration { return p.engine }

// Run propagates a single candidate to completion.
func (p *Propagator) Run(ctx context.Context, c *nucleus.Candidate, cfg Config) (*Result, error) {
	if cfg.MaxDistance <= 0 {
		return nil, fmt.Errorf("prop: max distance must be positive, got %g", cfg.MaxDistance)
	}

	result := &Result{Injected: c.Current}

	for _, m := range p.metrics {
		m.Reset()
	}

	for c.Active() {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if cfg.MaxEvents > 0 && len(result.Events) >= cfg.MaxEvents {
			break
		}

		in, ok := p.engine.SelectInteraction(c)
		if !ok {
			// No disintegration modeled at this identity and energy;
			// the nucleus free-streams out of the budget.
			result.Survived = true
			break
		}
		if result.Distance+in.Distance > cfg.MaxDistance {
			result.Survived = true
			break
		}

		before := c.Current
		result.Distance += in.Distance
		if err := p.engine.Perform(c); err != nil {
			return result, err
		}

		ev := Event{
			Distance: result.Distance,
			Channel:  in.Channel,
			Before:   before,
			After:    c.Current,
		}
		result.Events = append(result.Events, ev)

		for _, m := range p.metrics {
			m.Observe(ev)
		}
		for _, o := range p.observers {
			o.OnEvent(ev)
		}
	}

	result.Final = c.Current
	result.Secondaries = c.Secondaries
	result.Exhausted = !c.Active()
	return result, nil
}
