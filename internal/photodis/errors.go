package photodis

import "errors"

// Configuration errors surfaced at engine construction.
var (
	// ErrUnknownPhotonField indicates a photon-field kind with no
	// registered data source.
	ErrUnknownPhotonField = errors.New("photodis: unknown photon field")

	// ErrNoPendingInteraction indicates Perform was called on a
	// candidate without a pending interaction for this engine.
	ErrNoPendingInteraction = errors.New("photodis: no pending interaction")
)
