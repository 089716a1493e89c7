package superdense

import (
	"math/rand"
	"testing"
)

func successProb(t *testing.T, s Scenario, bits string) float64 {
	t.Helper()
	p, err := NewProtocol(s, rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatalf("NewProtocol(%s): %v", s.Name(), err)
	}
	prob, err := p.SuccessProbability(bits)
	if err != nil {
		t.Fatalf("SuccessProbability(%s, %s): %v", s.Name(), bits, err)
	}
	return prob
}

// TestMediumNoiseWindow checks the reference configuration against its
// documented behavior: success in the low nineties for every input. The
// asserted window is wider than the nominal 90-92% to leave room for the
// exact channel composition.
func TestMediumNoiseWindow(t *testing.T) {
	s, err := Noisy("medium", nil)
	if err != nil {
		t.Fatalf("Noisy: %v", err)
	}
	for _, bits := range Inputs() {
		prob := successProb(t, s, bits)
		if prob < 0.85 || prob > 0.97 {
			t.Errorf("medium noise success for %s = %v, want within [0.85, 0.97]", bits, prob)
		}
	}
}

// TestImperfectFiveDegreeWindow checks a reference point of the
// miscalibration model: 5 degrees of rotation error degrades success to
// somewhere between roughly half and three quarters.
func TestImperfectFiveDegreeWindow(t *testing.T) {
	s := ImperfectGates(Radians(5))
	for _, bits := range Inputs() {
		prob := successProb(t, s, bits)
		if prob < 0.45 || prob > 0.85 {
			t.Errorf("imperfect 5deg success for %s = %v, want within [0.45, 0.85]", bits, prob)
		}
	}
}

func TestNoiseLevelsOrdering(t *testing.T) {
	var last float64 = 1.1
	for _, level := range NoiseLevelNames() {
		s, err := Noisy(level, nil)
		if err != nil {
			t.Fatalf("Noisy(%s): %v", level, err)
		}
		prob := successProb(t, s, "11")
		if prob >= last {
			t.Errorf("success at %s noise = %v, want strictly below %v from the previous level", level, prob, last)
		}
		if prob <= 0.25 {
			t.Errorf("success at %s noise = %v, below random guessing", level, prob)
		}
		last = prob
	}
}

func TestUnknownNoiseLevel(t *testing.T) {
	if _, err := Noisy("catastrophic", nil); err == nil {
		t.Error("Noisy accepted an unknown level")
	}
}

func TestZeroAngleImperfectIsIdeal(t *testing.T) {
	prob := successProb(t, ImperfectGates(0), "11")
	if prob < 1-1e-9 {
		t.Errorf("success with zero-angle miscalibration = %v, want 1", prob)
	}
}

func TestSweepMonotonicallyDegrades(t *testing.T) {
	points, err := SweepGateErrors("11", []float64{0, 1, 2, 5, 10, 15}, 256, rand.New(rand.NewSource(23)))
	if err != nil {
		t.Fatalf("SweepGateErrors: %v", err)
	}
	if len(points) != 6 {
		t.Fatalf("got %d sweep points, want 6", len(points))
	}
	// Error probabilities cap out at 5 degrees, so beyond that the points
	// plateau rather than keep falling.
	for i := 1; i < len(points); i++ {
		if points[i].Result.Fidelity > points[i-1].Result.Fidelity+1e-9 {
			t.Errorf("fidelity at %v deg (%v) above fidelity at %v deg (%v)",
				points[i].Degrees, points[i].Result.Fidelity,
				points[i-1].Degrees, points[i-1].Result.Fidelity)
		}
	}
	if points[len(points)-1].Result.Fidelity >= points[0].Result.Fidelity {
		t.Errorf("fidelity never degraded across the sweep: %v -> %v",
			points[0].Result.Fidelity, points[len(points)-1].Result.Fidelity)
	}
}
