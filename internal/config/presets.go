package config

import "sort"

var Presets = map[string]map[string]*Config{
	"Fe56": {
		"gzk": {
			Field: "CMB", Nuclide: "Fe56", EnergyEeV: 200, Redshift: 0,
			Runs: 1000, MaxDistMpc: 1000, MaxEvents: 1000,
		},
		"local": {
			Field: "CMB", Nuclide: "Fe56", EnergyEeV: 50, Redshift: 0,
			Runs: 1000, MaxDistMpc: 100, MaxEvents: 1000,
		},
		"distant": {
			Field: "CMB_IRB", Nuclide: "Fe56", EnergyEeV: 100, Redshift: 1.0,
			Runs: 1000, MaxDistMpc: 3000, MaxEvents: 1000,
		},
	},
	"O16": {
		"gzk": {
			Field: "CMB", Nuclide: "O16", EnergyEeV: 60, Redshift: 0,
			Runs: 1000, MaxDistMpc: 1000, MaxEvents: 100,
		},
		"irb": {
			Field: "IRB", Nuclide: "O16", EnergyEeV: 10, Redshift: 0.5,
			Runs: 1000, MaxDistMpc: 2000, MaxEvents: 100,
		},
	},
	"He4": {
		"fragile": {
			Field: "CMB", Nuclide: "He4", EnergyEeV: 20, Redshift: 0,
			Runs: 1000, MaxDistMpc: 500, MaxEvents: 10,
		},
	},
}

func GetPreset(nuclide, preset string) *Config {
	nuclidePresets, ok := Presets[nuclide]
	if !ok {
		return nil
	}
	cfg, ok := nuclidePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(nuclide string) []string {
	nuclidePresets, ok := Presets[nuclide]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(nuclidePresets))
	for name := range nuclidePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
