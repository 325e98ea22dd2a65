// Package interp provides the interpolation primitive used to evaluate
// tabulated rate curves at arbitrary log-energy points.
package interp

// Equidistant linearly interpolates y, sampled at equidistant points
// covering [xmin, xmax], at the query point x. The endpoints map
// exactly onto the first and last sample. Callers keep x inside the
// domain; values outside are clamped to the nearest endpoint.
func Equidistant(x, xmin, xmax float64, y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	if len(y) == 1 || x <= xmin {
		return y[0]
	}
	if x >= xmax {
		return y[len(y)-1]
	}

	pos := (x - xmin) / (xmax - xmin) * float64(len(y)-1)
	i := int(pos)
	if i >= len(y)-1 {
		return y[len(y)-1]
	}
	frac := pos - float64(i)
	return y[i] + frac*(y[i+1]-y[i])
}
