// Package photonfield enumerates the ambient photon backgrounds a
// nucleus can interact with and their cosmological scaling.
package photonfield

import (
	"fmt"
	"math"
	"strings"
)

// Kind selects a photon background spectrum.
type Kind int

const (
	CMB Kind = iota
	IRB
	CMBIRB
)

type source struct {
	File        string
	Description string
}

// sources maps each background to its rate-table file and the engine
// description used to key pending interactions. Unknown kinds have no
// entry and are rejected at construction.
var sources = map[Kind]source{
	CMB:    {"photodis_CMB.txt", "PhotoDisintegration: CMB"},
	IRB:    {"photodis_IRB.txt", "PhotoDisintegration: IRB"},
	CMBIRB: {"photodis_CMB_IRB.txt", "PhotoDisintegration: CMB and IRB"},
}

func (k Kind) String() string {
	switch k {
	case CMB:
		return "CMB"
	case IRB:
		return "IRB"
	case CMBIRB:
		return "CMB_IRB"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// DataFile returns the rate-table file name for k.
func (k Kind) DataFile() (string, bool) {
	s, ok := sources[k]
	return s.File, ok
}

// Description returns the engine description string for k.
func (k Kind) Description() (string, bool) {
	s, ok := sources[k]
	return s.Description, ok
}

// Kinds lists the known backgrounds in declaration order.
func Kinds() []Kind {
	return []Kind{CMB, IRB, CMBIRB}
}

// Parse reads a background kind from its name.
func Parse(s string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CMB":
		return CMB, nil
	case "IRB":
		return IRB, nil
	case "CMB_IRB", "CMB+IRB", "CMBIRB":
		return CMBIRB, nil
	default:
		return 0, fmt.Errorf("photonfield: unknown photon field %q", s)
	}
}

// Scaling returns the photon number density at redshift z relative to
// today. The CMB dilutes exactly as (1+z)^3 under adiabatic expansion.
// The infrared background follows the star formation history instead:
// approximated here as (1+z)^4 out to z=1.3, frozen to z=4, absent
// beyond. The combined field is CMB-dominated and uses the CMB law.
func Scaling(k Kind, z float64) float64 {
	switch k {
	case IRB:
		switch {
		case z > 4:
			return 0
		case z > 1.3:
			return math.Pow(2.3, 4)
		default:
			return math.Pow(1+z, 4)
		}
	default:
		return math.Pow(1+z, 3)
	}
}
