// Package metrics provides propagation statistics accumulated over
// disintegration events.
package metrics

import (
	"sync"

	"github.com/san-kum/uhecr/internal/prop"
)

// EventCount counts disintegration events.
type EventCount struct {
	name  string
	count int
}

func NewEventCount() *EventCount {
	return &EventCount{name: "events"}
}

func (m *EventCount) Name() string          { return m.name }
func (m *EventCount) Observe(ev prop.Event) { m.count++ }
func (m *EventCount) Value() float64        { return float64(m.count) }
func (m *EventCount) Reset()                { m.count = 0 }

// MeanFreePath averages the comoving distance between consecutive
// events in metres.
type MeanFreePath struct {
	name    string
	last    float64
	total   float64
	samples int
}

func NewMeanFreePath() *MeanFreePath {
	return &MeanFreePath{name: "mean_free_path"}
}

func (m *MeanFreePath) Name() string { return m.name }

func (m *MeanFreePath) Observe(ev prop.Event) {
	m.total += ev.Distance - m.last
	m.last = ev.Distance
	m.samples++
}

func (m *MeanFreePath) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanFreePath) Reset() {
	m.last = 0
	m.total = 0
	m.samples = 0
}

// ChannelTally counts events per channel code across a whole ensemble.
// Safe for concurrent observers.
type ChannelTally struct {
	mu     sync.Mutex
	counts map[int]int
}

func NewChannelTally() *ChannelTally {
	return &ChannelTally{counts: make(map[int]int)}
}

func (t *ChannelTally) OnEvent(ev prop.Event) {
	t.mu.Lock()
	t.counts[ev.Channel]++
	t.mu.Unlock()
}

// Counts returns a copy of the per-channel tallies.
func (t *ChannelTally) Counts() map[int]int {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[int]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}
