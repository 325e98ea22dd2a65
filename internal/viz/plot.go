package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/uhecr/internal/analysis"
)

// LossLengthPlot renders an asciigraph of log10(loss length / Mpc)
// against log10(Lorentz factor) for a scanned nuclide.
func LossLengthPlot(scan []analysis.ScanPoint, caption string, height int) string {
	finite := analysis.Finite(scan)
	if len(finite) == 0 {
		return "no tabulated disintegration data in range"
	}

	series := make([]float64, len(finite))
	for i, p := range finite {
		series[i] = math.Log10(p.LossLengthMpc)
	}

	graph := asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Width(len(series)),
		asciigraph.Caption(caption),
	)

	var sb strings.Builder
	sb.WriteString(graph)
	fmt.Fprintf(&sb, "\nlg range: %.2f .. %.2f  (y axis: log10 Mpc)",
		finite[0].Lg, finite[len(finite)-1].Lg)
	return sb.String()
}
