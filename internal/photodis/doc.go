// Package photodis implements stochastic photo-disintegration of
// high-energy nuclei on a diffuse photon background.
//
// Rates are tabulated per nuclide and per channel as 200 samples of
// the inverse mean free path over log10(Lorentz factor) in [6, 14].
// The engine races the competing channels as independent Poisson
// processes ([PhotoDisintegration.SelectInteraction]), applies the
// winning channel ([PhotoDisintegration.Perform]) conserving baryon
// number, charge and energy exactly, and exposes the deterministic
// energy-loss length for diagnostics
// ([PhotoDisintegration.EnergyLossLength]).
//
// The rate table is immutable after construction and safe for
// concurrent readers. The uniform random source is the only mutable
// state; use [PhotoDisintegration.Fork] to give each worker goroutine
// its own source over the shared table.
package photodis
