package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	statusRunning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	statusPaused  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
	barDone       = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	barActive     = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
	massHeavy     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	massLight     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	massGone      = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

// ProgressBar renders a fixed-width bar filled to percent. A partially
// complete cell is drawn as a half block; the bar turns green once the
// ensemble finishes.
func ProgressBar(percent float64, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 1 {
		percent = 1
	}

	cells := percent * float64(width)
	filled := int(cells)
	var sb strings.Builder
	sb.WriteString(strings.Repeat("█", filled))
	if filled < width {
		if cells-float64(filled) >= 0.5 {
			sb.WriteString("▌")
			filled++
		}
		sb.WriteString(strings.Repeat("░", width-filled))
	}

	if percent >= 1 {
		return barDone.Render(sb.String())
	}
	return barActive.Render(sb.String())
}

// MassTrack renders the remnant mass number of the most recent runs as a
// one-line strip. Each glyph's height is the surviving mass fraction
// A'/A of one run; runs that kept most of their nucleons draw green,
// heavily stripped runs yellow, and fully exhausted runs a red baseline.
func MassTrack(remnants []float64, injectedA int, width int) string {
	if len(remnants) == 0 || injectedA <= 0 {
		return strings.Repeat("─", width)
	}

	glyphs := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	// Show the tail: the newest runs are the interesting ones.
	if len(remnants) > width {
		remnants = remnants[len(remnants)-width:]
	}

	var sb strings.Builder
	for _, a := range remnants {
		frac := a / float64(injectedA)
		if frac > 1 {
			frac = 1
		}
		if frac <= 0 {
			sb.WriteString(massGone.Render("▁"))
			continue
		}
		idx := int(frac * float64(len(glyphs)-1))
		g := string(glyphs[idx])
		if frac >= 0.7 {
			sb.WriteString(massHeavy.Render(g))
		} else {
			sb.WriteString(massLight.Render(g))
		}
	}
	return sb.String()
}
