package quantum

import (
	"math"
	"math/rand"
	"testing"
)

func TestBellDistribution(t *testing.T) {
	c := New(2, 2).H(0).CX(0, 1).Measure(0, 0).Measure(1, 1)
	sim := NewSimulator(nil, rand.New(rand.NewSource(1)))
	dist, err := sim.Distribution(c)
	if err != nil {
		t.Fatalf("Distribution: %v", err)
	}
	if len(dist) != 2 {
		t.Fatalf("Distribution has %d outcomes, want 2: %v", len(dist), dist)
	}
	for _, k := range []string{"00", "11"} {
		if math.Abs(dist[k]-0.5) > 1e-9 {
			t.Errorf("P(%s) = %v, want 0.5", k, dist[k])
		}
	}
}

// TestOutcomeKeyOrdering pins the classical-bit convention: measuring qubit q
// into classical bit c places the bit at position cbits-1-c of the key. An
// inverted mapping still passes for symmetric inputs, so it is pinned here.
func TestOutcomeKeyOrdering(t *testing.T) {
	c := New(2, 2).X(0).Measure(0, 1).Measure(1, 0)
	sim := NewSimulator(nil, rand.New(rand.NewSource(1)))
	dist, err := sim.Distribution(c)
	if err != nil {
		t.Fatalf("Distribution: %v", err)
	}
	if math.Abs(dist["10"]-1) > 1e-9 {
		t.Errorf("Distribution = %v, want all mass on \"10\"", dist)
	}
}

func TestRunShotTotals(t *testing.T) {
	c := New(2, 2).H(0).CX(0, 1).Measure(0, 0).Measure(1, 1)
	sim := NewSimulator(nil, rand.New(rand.NewSource(42)))
	counts, err := sim.Run(c, 512)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if counts.Total() != 512 {
		t.Errorf("Total() = %d, want 512", counts.Total())
	}
	// A fair Bell pair should land at least some shots on each outcome.
	if counts["00"] == 0 || counts["11"] == 0 {
		t.Errorf("counts = %v, want both 00 and 11 observed", counts)
	}
	if counts["01"] != 0 || counts["10"] != 0 {
		t.Errorf("counts = %v, want no mass on 01 or 10", counts)
	}
}

func TestRunWithoutMeasurements(t *testing.T) {
	c := New(2, 2).H(0).CX(0, 1)
	sim := NewSimulator(nil, rand.New(rand.NewSource(1)))
	counts, err := sim.Run(c, 128)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("counts = %v, want empty for a measurement-free circuit", counts)
	}
}

func TestRunZeroShots(t *testing.T) {
	c := New(1, 1).X(0).Measure(0, 0)
	sim := NewSimulator(nil, rand.New(rand.NewSource(1)))
	counts, err := sim.Run(c, 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("counts = %v, want empty for zero shots", counts)
	}
}

// TestSampleMatchesRun checks that evolving once and sampling the returned
// distribution is identical to Run, given the same seed.
func TestSampleMatchesRun(t *testing.T) {
	c := New(2, 2).H(0).CX(0, 1).Measure(0, 0).Measure(1, 1)

	ran := NewSimulator(nil, rand.New(rand.NewSource(42)))
	want, err := ran.Run(c, 256)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	sampled := NewSimulator(nil, rand.New(rand.NewSource(42)))
	dist, err := sampled.Distribution(c)
	if err != nil {
		t.Fatalf("Distribution: %v", err)
	}
	got := sampled.Sample(dist, 256)

	if len(got) != len(want) {
		t.Fatalf("Sample counts = %v, Run counts = %v", got, want)
	}
	for k, n := range want {
		if got[k] != n {
			t.Errorf("Sample[%s] = %d, Run[%s] = %d", k, got[k], k, n)
		}
	}
}

func TestNoisyDistributionStaysNormalized(t *testing.T) {
	nm := NewNoiseModel()
	dep1, err := Depolarizing(0.05, 1)
	if err != nil {
		t.Fatalf("Depolarizing: %v", err)
	}
	dep2, err := Depolarizing(0.15, 2)
	if err != nil {
		t.Fatalf("Depolarizing: %v", err)
	}
	tr, err := ThermalRelaxation(30e-6, 40e-6, 50e-9)
	if err != nil {
		t.Fatalf("ThermalRelaxation: %v", err)
	}
	if err := nm.AddAllQubitQuantumError(dep1, []string{"h", "x", "z"}); err != nil {
		t.Fatal(err)
	}
	if err := nm.AddAllQubitQuantumError(dep2, []string{"cx"}); err != nil {
		t.Fatal(err)
	}
	if err := nm.AddAllQubitQuantumError(tr, []string{"h", "x", "z"}); err != nil {
		t.Fatal(err)
	}

	c := New(2, 2).H(0).CX(0, 1).X(0).Z(0).CX(0, 1).H(0).Measure(0, 1).Measure(1, 0)
	sim := NewSimulator(nm, rand.New(rand.NewSource(7)))
	dist, err := sim.Distribution(c)
	if err != nil {
		t.Fatalf("Distribution: %v", err)
	}
	var sum float64
	for _, p := range dist {
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("distribution sums to %v, want 1", sum)
	}
}

func TestDepolarizingDegradesBellPair(t *testing.T) {
	nm := NewNoiseModel()
	dep2, err := Depolarizing(0.2, 2)
	if err != nil {
		t.Fatalf("Depolarizing: %v", err)
	}
	if err := nm.AddAllQubitQuantumError(dep2, []string{"cx"}); err != nil {
		t.Fatal(err)
	}
	c := New(2, 2).H(0).CX(0, 1).Measure(0, 0).Measure(1, 1)
	sim := NewSimulator(nm, rand.New(rand.NewSource(3)))
	dist, err := sim.Distribution(c)
	if err != nil {
		t.Fatalf("Distribution: %v", err)
	}
	correlated := dist["00"] + dist["11"]
	if correlated >= 1-1e-9 {
		t.Errorf("P(00)+P(11) = %v, want strictly below 1 under depolarizing noise", correlated)
	}
	if correlated <= 0.5 {
		t.Errorf("P(00)+P(11) = %v, want above the fully-mixed 0.5", correlated)
	}
}
