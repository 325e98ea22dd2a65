// Package viz renders propagation results in the terminal: a live
// bubbletea ensemble view ([Model]) and asciigraph plots of the
// deterministic loss-length scans ([LossLengthPlot]).
package viz
