package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/uhecr/internal/nucleus"
)

const (
	DefaultField      = "CMB"
	DefaultDataDir    = "data"
	DefaultNuclide    = "Fe56"
	DefaultEnergyEeV  = 100.0
	DefaultRedshift   = 0.0
	DefaultRuns       = 100
	DefaultMaxDistMpc = 1000.0
	DefaultMaxEvents  = 1000
)

// EeV is 1e18 eV, the conventional energy unit of the CLI.
const EeV = 1e18

type Config struct {
	Field      string  `yaml:"photon_field"`
	DataDir    string  `yaml:"data_dir"`
	Nuclide    string  `yaml:"nuclide"`
	EnergyEeV  float64 `yaml:"energy_eev"`
	Redshift   float64 `yaml:"redshift"`
	Runs       int     `yaml:"runs"`
	Seed       int64   `yaml:"seed"`
	MaxDistMpc float64 `yaml:"max_distance_mpc"`
	MaxEvents  int     `yaml:"max_events"`
}

func DefaultConfig() *Config {
	return &Config{
		Field:      DefaultField,
		DataDir:    DefaultDataDir,
		Nuclide:    DefaultNuclide,
		EnergyEeV:  DefaultEnergyEeV,
		Redshift:   DefaultRedshift,
		Runs:       DefaultRuns,
		MaxDistMpc: DefaultMaxDistMpc,
		MaxEvents:  DefaultMaxEvents,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the fields the engines cannot defend against
// themselves.
func (c *Config) Validate() error {
	if _, err := nucleus.Parse(c.Nuclide); err != nil {
		return err
	}
	if c.EnergyEeV <= 0 {
		return fmt.Errorf("config: energy must be positive, got %f", c.EnergyEeV)
	}
	if c.Redshift < 0 {
		return fmt.Errorf("config: redshift must be non-negative, got %f", c.Redshift)
	}
	if c.Runs <= 0 {
		return fmt.Errorf("config: runs must be positive, got %d", c.Runs)
	}
	if c.MaxDistMpc <= 0 {
		return fmt.Errorf("config: max distance must be positive, got %f", c.MaxDistMpc)
	}
	return nil
}

// Energy returns the injection energy in eV.
func (c *Config) Energy() float64 {
	return c.EnergyEeV * EeV
}
