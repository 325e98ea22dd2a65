package metrics

import (
	"testing"

	"github.com/san-kum/uhecr/internal/prop"
)

func TestMeanFreePath(t *testing.T) {
	m := NewMeanFreePath()

	if m.Value() != 0 {
		t.Errorf("expected 0 before any events, got %f", m.Value())
	}

	m.Observe(prop.Event{Distance: 10})
	m.Observe(prop.Event{Distance: 30})
	m.Observe(prop.Event{Distance: 60})

	if got := m.Value(); got != 20 {
		t.Errorf("expected mean free path 20, got %f", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Errorf("expected 0 after reset, got %f", m.Value())
	}
}

func TestChannelTally(t *testing.T) {
	tally := NewChannelTally()
	tally.OnEvent(prop.Event{Channel: 100000})
	tally.OnEvent(prop.Event{Channel: 100000})
	tally.OnEvent(prop.Event{Channel: 10000})

	counts := tally.Counts()
	if counts[100000] != 2 || counts[10000] != 1 {
		t.Errorf("unexpected tallies: %v", counts)
	}
}

func TestEventCount(t *testing.T) {
	m := NewEventCount()
	m.Observe(prop.Event{})
	m.Observe(prop.Event{})

	if m.Value() != 2 {
		t.Errorf("expected 2, got %f", m.Value())
	}
}
