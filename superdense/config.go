package superdense

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NoiseParams parameterizes one noise level. Times are in seconds.
type NoiseParams struct {
	// SingleGateError is the depolarizing parameter for h, x and z gates.
	SingleGateError float64 `yaml:"single_gate_error" json:"single_gate_error"`

	// TwoGateError is the depolarizing parameter for cx gates.
	TwoGateError float64 `yaml:"two_gate_error" json:"two_gate_error"`

	// T1 and T2 are the relaxation and dephasing time constants.
	T1 float64 `yaml:"t1" json:"t1"`
	T2 float64 `yaml:"t2" json:"t2"`

	// GateTime is the duration thermal relaxation acts over per gate.
	GateTime float64 `yaml:"gate_time" json:"gate_time"`
}

// Config carries the tunable tables for the noisy scenarios.
type Config struct {
	NoiseLevels map[string]NoiseParams `yaml:"noise_levels" json:"noise_levels"`
}

// NoiseLevelNames lists the built-in levels from mildest to harshest.
func NoiseLevelNames() []string {
	return []string{"low", "medium", "high"}
}

// DefaultConfig returns the compiled-in noise tables. The medium level is the
// reference configuration: the protocol is expected to decode 90-92% of
// messages correctly under it.
func DefaultConfig() *Config {
	return &Config{
		NoiseLevels: map[string]NoiseParams{
			"low": {
				SingleGateError: 0.001,
				TwoGateError:    0.01,
				T1:              50e-6,
				T2:              70e-6,
				GateTime:        50e-9,
			},
			"medium": {
				SingleGateError: 0.01,
				TwoGateError:    0.05,
				T1:              30e-6,
				T2:              40e-6,
				GateTime:        50e-9,
			},
			"high": {
				SingleGateError: 0.05,
				TwoGateError:    0.15,
				T1:              10e-6,
				T2:              15e-6,
				GateTime:        50e-9,
			},
		},
	}
}

// LoadConfig reads a YAML config file and merges it over the defaults:
// levels present in the file replace the built-in entry of the same name,
// absent levels keep their defaults.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var loaded Config
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	for level, params := range loaded.NoiseLevels {
		cfg.NoiseLevels[level] = params
	}
	return cfg, nil
}
