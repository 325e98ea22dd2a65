package viz

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/uhecr/internal/nucleus"
	"github.com/san-kum/uhecr/internal/prop"
)

type TickMsg time.Time

// Model drives an ensemble one candidate per tick and renders the
// accumulated disintegration statistics.
type Model struct {
	base      *prop.Propagator
	inj       prop.Injection
	cfg       prop.Config
	seedStart int64
	total     int

	done      int
	survived  int
	exhausted int
	events    int
	remnantA  []float64
	lastRun   *prop.Result

	running bool
	err     error
}

// NewModel prepares a live view over total candidates.
func NewModel(base *prop.Propagator, inj prop.Injection, cfg prop.Config, seedStart int64, total int) Model {
	return Model{
		base:      base,
		inj:       inj,
		cfg:       cfg,
		seedStart: seedStart,
		total:     total,
		running:   true,
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		}

	case TickMsg:
		if m.running && m.done < m.total && m.err == nil {
			m = m.step()
		}
		if m.done >= m.total {
			m.running = false
		}
		return m, tick()
	}
	return m, nil
}

// step propagates one candidate to completion.
func (m Model) step() Model {
	src := rand.New(rand.NewSource(m.seedStart + int64(m.done)))
	worker := prop.New(m.base.Engine().Fork(src))

	c := nucleus.NewCandidate(m.inj.Nuclide, m.inj.Energy, m.inj.Redshift)
	result, err := worker.Run(context.Background(), c, m.cfg)
	if err != nil {
		m.err = err
		return m
	}

	m.done++
	m.events += len(result.Events)
	if result.Survived {
		m.survived++
	}
	if result.Exhausted {
		m.exhausted++
		m.remnantA = append(m.remnantA, 0)
	} else {
		m.remnantA = append(m.remnantA, float64(result.Final.A))
	}
	m.lastRun = result
	return m
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(fmt.Sprintf("uhecr live: %s at %.1f EeV, z=%.2f (%s)",
		m.inj.Nuclide, m.inj.Energy/1e18, m.inj.Redshift, m.base.Engine().Field())))
	sb.WriteByte('\n')

	status := statusRunning.Render("running")
	if !m.running {
		status = statusPaused.Render("paused")
		if m.done >= m.total {
			status = statusRunning.Render("done")
		}
	}

	pct := 0.0
	if m.total > 0 {
		pct = float64(m.done) / float64(m.total)
	}
	sb.WriteString(fmt.Sprintf("%s  %s %d/%d\n\n", status, ProgressBar(pct, 40), m.done, m.total))

	var stats strings.Builder
	row := func(label, value string) {
		stats.WriteString(labelStyle.Render(label))
		stats.WriteString(valueStyle.Render(value))
		stats.WriteByte('\n')
	}
	row("survived", fmt.Sprintf("%d", m.survived))
	row("disintegrated", fmt.Sprintf("%d", m.done-m.survived))
	row("exhausted", fmt.Sprintf("%d", m.exhausted))
	if m.done > 0 {
		row("events/run", fmt.Sprintf("%.2f", float64(m.events)/float64(m.done)))
	}
	if m.lastRun != nil {
		row("last remnant", m.lastRun.Final.Nuclide.String())
		row("secondaries", fmt.Sprintf("%d", len(m.lastRun.Secondaries)))
	}
	sb.WriteString(statsStyle.Render(stats.String()))
	sb.WriteByte('\n')

	if len(m.remnantA) > 1 {
		sb.WriteString(graphStyle.Render("remnant mass per run\n" + MassTrack(m.remnantA, m.inj.Nuclide.A, 60)))
		sb.WriteByte('\n')
	}

	if m.err != nil {
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.err.Error()))
		sb.WriteByte('\n')
	}

	sb.WriteString(helpStyle.Render("space pause · q quit"))
	return sb.String()
}
