package superdense

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/deadserpent/superdense/superdense/quantum"
)

// A Scenario describes one simulated operating regime for the protocol:
// a human-readable name plus the noise model to run under.
type Scenario interface {
	Name() string

	// NoiseModel builds the scenario's noise model. Nil means ideal,
	// noiseless evolution.
	NoiseModel() (*quantum.NoiseModel, error)
}

type idealScenario struct{}

func (idealScenario) Name() string { return "Ideal" }

func (idealScenario) NoiseModel() (*quantum.NoiseModel, error) { return nil, nil }

// Ideal returns the noiseless scenario: the theoretical limit of the
// protocol, where every message decodes perfectly.
func Ideal() Scenario { return idealScenario{} }

type noisyScenario struct {
	level  string
	params NoiseParams
}

// Noisy returns a scenario applying realistic hardware noise at a named
// level ("low", "medium" or "high"): depolarizing errors on every gate plus
// thermal relaxation over each single-qubit gate's duration. Parameters come
// from cfg; pass nil for the built-in tables.
func Noisy(level string, cfg *Config) (Scenario, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	params, ok := cfg.NoiseLevels[level]
	if !ok {
		return nil, fmt.Errorf("unknown noise level %q", level)
	}
	return noisyScenario{level: level, params: params}, nil
}

func (s noisyScenario) Name() string {
	return fmt.Sprintf("Noisy (%s)", s.level)
}

func (s noisyScenario) NoiseModel() (*quantum.NoiseModel, error) {
	nm := quantum.NewNoiseModel()

	single, err := quantum.Depolarizing(s.params.SingleGateError, 1)
	if err != nil {
		return nil, err
	}
	if err := nm.AddAllQubitQuantumError(single, []string{"h", "x", "z"}); err != nil {
		return nil, err
	}

	double, err := quantum.Depolarizing(s.params.TwoGateError, 2)
	if err != nil {
		return nil, err
	}
	if err := nm.AddAllQubitQuantumError(double, []string{"cx"}); err != nil {
		return nil, err
	}

	thermal, err := quantum.ThermalRelaxation(s.params.T1, s.params.T2, s.params.GateTime)
	if err != nil {
		return nil, err
	}
	if err := nm.AddAllQubitQuantumError(thermal, []string{"h", "x", "z"}); err != nil {
		return nil, err
	}
	return nm, nil
}

type imperfectScenario struct {
	angle float64
}

// ImperfectGates returns a scenario approximating systematically
// miscalibrated gates: an over/under-rotation of the given angle (radians)
// modeled as depolarizing error scaled with the angle, plus amplitude
// damping. Error probabilities cap at 10% for single-qubit gates, 15% for
// CNOTs and 5% damping, so large angles all hit the same worst case.
func ImperfectGates(angle float64) Scenario {
	return imperfectScenario{angle: angle}
}

func (s imperfectScenario) Name() string {
	return fmt.Sprintf("Imperfect Gates (%.1f deg)", Degrees(s.angle))
}

func (s imperfectScenario) NoiseModel() (*quantum.NoiseModel, error) {
	nm := quantum.NewNoiseModel()

	single, err := quantum.Depolarizing(math.Min(0.10, 2*s.angle), 1)
	if err != nil {
		return nil, err
	}
	if err := nm.AddAllQubitQuantumError(single, []string{"h", "x", "z"}); err != nil {
		return nil, err
	}

	double, err := quantum.Depolarizing(math.Min(0.15, 3*s.angle), 2)
	if err != nil {
		return nil, err
	}
	if err := nm.AddAllQubitQuantumError(double, []string{"cx"}); err != nil {
		return nil, err
	}

	damping, err := quantum.AmplitudeDamping(math.Min(0.05, s.angle))
	if err != nil {
		return nil, err
	}
	if err := nm.AddAllQubitQuantumError(damping, []string{"h", "x", "z"}); err != nil {
		return nil, err
	}
	return nm, nil
}

// Angle returns the scenario's rotation error in radians.
func (s imperfectScenario) Angle() float64 { return s.angle }

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// A SweepPoint is one entry of a gate-error sweep: the miscalibration angle
// tried and the result of transmitting a message under it.
type SweepPoint struct {
	Degrees float64 `json:"degrees"`
	Result  Result  `json:"result"`
}

// SweepGateErrors runs the imperfect-gates scenario for one message across a
// range of miscalibration angles, given in degrees. A fresh protocol is
// built per angle so each point gets a clean noise model.
func SweepGateErrors(bits string, degrees []float64, shots int, r *rand.Rand) ([]SweepPoint, error) {
	points := make([]SweepPoint, 0, len(degrees))
	for _, deg := range degrees {
		p, err := NewProtocol(ImperfectGates(Radians(deg)), r)
		if err != nil {
			return nil, err
		}
		res, err := p.Run(bits, shots)
		if err != nil {
			return nil, fmt.Errorf("sweeping %v degrees: %w", deg, err)
		}
		points = append(points, SweepPoint{Degrees: deg, Result: res})
	}
	return points, nil
}
