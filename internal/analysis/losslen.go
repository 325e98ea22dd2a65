// Package analysis provides deterministic diagnostics over the loaded
// rate tables, independent of any random state.
package analysis

import (
	"math"

	"github.com/san-kum/uhecr/internal/nucleus"
	"github.com/san-kum/uhecr/internal/photodis"
)

// ScanPoint samples the diagnostic lengths at one log10(Lorentz
// factor) coordinate. Lengths are in Mpc; out-of-range or untabulated
// points carry +Inf.
type ScanPoint struct {
	Lg                float64
	EnergyEeV         float64
	LossLengthMpc     float64
	InteractionLenMpc float64
}

// LossLengthScan evaluates the energy-loss and interaction lengths of
// a nuclide over the tabulated lg range, strictly inside the open
// interval so every point is defined.
func LossLengthScan(pd *photodis.PhotoDisintegration, n nucleus.Nuclide, points int) []ScanPoint {
	if points < 2 {
		points = 2
	}

	// Stay half a step inside each boundary.
	step := (photodis.LgMax - photodis.LgMin) / float64(points)
	out := make([]ScanPoint, 0, points)

	for i := 0; i < points; i++ {
		lg := photodis.LgMin + (float64(i)+0.5)*step
		e := math.Pow(10, lg) * n.RestEnergy()

		out = append(out, ScanPoint{
			Lg:                lg,
			EnergyEeV:         e / 1e18,
			LossLengthMpc:     pd.EnergyLossLength(n, e) / photodis.Mpc,
			InteractionLenMpc: pd.InteractionLength(n, e) / photodis.Mpc,
		})
	}
	return out
}

// Finite filters a scan down to the points with finite loss length,
// for plotting.
func Finite(scan []ScanPoint) []ScanPoint {
	out := make([]ScanPoint, 0, len(scan))
	for _, p := range scan {
		if !math.IsInf(p.LossLengthMpc, 0) && !math.IsNaN(p.LossLengthMpc) {
			out = append(out, p)
		}
	}
	return out
}
