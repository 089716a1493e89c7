package quantum

import (
	"errors"
	"math"
	"testing"
)

func TestNewQuantumErrorRejectsNonCPTP(t *testing.T) {
	// A scaled "identity" is not trace preserving; a hand-written operator
	// like this must be rejected rather than evolve unphysical states.
	_, err := NewQuantumError([][]complex128{{1, 0, 0, 1.05}}, 1)
	if !errors.Is(err, ErrNotCPTP) {
		t.Errorf("NewQuantumError(scaled identity) = %v, want ErrNotCPTP", err)
	}
}

func TestNewQuantumErrorAcceptsUnitary(t *testing.T) {
	s := complex(1/math.Sqrt2, 0)
	qe, err := NewQuantumError([][]complex128{{s, s, s, -s}}, 1)
	if err != nil {
		t.Fatalf("NewQuantumError(hadamard) = %v", err)
	}
	if qe.Qubits() != 1 {
		t.Errorf("Qubits() = %d, want 1", qe.Qubits())
	}
}

func TestNewQuantumErrorDimensionMismatch(t *testing.T) {
	// Single-qubit operator claiming to be a two-qubit channel.
	if _, err := NewQuantumError([][]complex128{{1, 0, 0, 1}}, 2); err == nil {
		t.Error("NewQuantumError accepted a 2x2 operator for a 2-qubit channel")
	}
}

func TestDepolarizing(t *testing.T) {
	for _, tc := range []struct {
		p       float64
		qubits  int
		wantErr bool
	}{
		{0, 1, false},
		{0.02, 1, false},
		{0.15, 2, false},
		{1, 2, false},
		{-0.1, 1, true},
		{1.1, 1, true},
		{0.05, 3, true},
	} {
		_, err := Depolarizing(tc.p, tc.qubits)
		if gotErr := err != nil; gotErr != tc.wantErr {
			t.Errorf("Depolarizing(%v, %d) = %v, wantErr = %v", tc.p, tc.qubits, err, tc.wantErr)
		}
	}
}

func TestThermalRelaxation(t *testing.T) {
	for _, tc := range []struct {
		name       string
		t1, t2, gt float64
		wantErr    bool
	}{
		{"physical", 30e-6, 40e-6, 50e-9, false},
		{"t2 equals 2t1", 30e-6, 60e-6, 50e-9, false},
		{"t2 beyond 2t1", 30e-6, 61e-6, 50e-9, true},
		{"zero t1", 0, 40e-6, 50e-9, true},
		{"negative gate time", 30e-6, 40e-6, -1e-9, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ThermalRelaxation(tc.t1, tc.t2, tc.gt)
			if gotErr := err != nil; gotErr != tc.wantErr {
				t.Errorf("ThermalRelaxation(%v, %v, %v) = %v, wantErr = %v", tc.t1, tc.t2, tc.gt, err, tc.wantErr)
			}
		})
	}
}

func TestCompose(t *testing.T) {
	ad, err := AmplitudeDamping(0.05)
	if err != nil {
		t.Fatalf("AmplitudeDamping: %v", err)
	}
	pd, err := PhaseDamping(0.01)
	if err != nil {
		t.Fatalf("PhaseDamping: %v", err)
	}
	if _, err := Compose(ad, pd); err != nil {
		t.Errorf("Compose(1q, 1q) = %v", err)
	}
	dep2, err := Depolarizing(0.05, 2)
	if err != nil {
		t.Fatalf("Depolarizing: %v", err)
	}
	if _, err := Compose(ad, dep2); err == nil {
		t.Error("Compose accepted channels of different arity")
	}
}

func TestNoiseModelArity(t *testing.T) {
	nm := NewNoiseModel()
	dep1, err := Depolarizing(0.01, 1)
	if err != nil {
		t.Fatalf("Depolarizing: %v", err)
	}
	dep2, err := Depolarizing(0.05, 2)
	if err != nil {
		t.Fatalf("Depolarizing: %v", err)
	}

	if err := nm.AddAllQubitQuantumError(dep1, []string{"h", "x", "z"}); err != nil {
		t.Errorf("attaching 1q channel to 1q gates: %v", err)
	}
	if err := nm.AddAllQubitQuantumError(dep2, []string{"cx"}); err != nil {
		t.Errorf("attaching 2q channel to cx: %v", err)
	}
	// Arity mismatches must fail when the channel is attached, not deep
	// inside a simulation run.
	if err := nm.AddAllQubitQuantumError(dep1, []string{"cx"}); err == nil {
		t.Error("attached 1q channel to cx")
	}
	if err := nm.AddAllQubitQuantumError(dep2, []string{"h"}); err == nil {
		t.Error("attached 2q channel to h")
	}
	if err := nm.AddAllQubitQuantumError(dep1, []string{"measure"}); err == nil {
		t.Error("attached channel to a measurement")
	}
}

func TestChannelsPreserveTrace(t *testing.T) {
	mk := func(name string, f func() (*QuantumError, error)) {
		qe, err := f()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		rho := NewDensityMatrix(1)
		rho.applyUnitary(expand(gateH, []int{0}, 1))
		full := make([]matrix, 0, len(qe.kraus))
		for _, k := range qe.kraus {
			full = append(full, expand(k, []int{0}, 1))
		}
		rho.applyChannel(full)
		if tr := rho.Trace(); math.Abs(tr-1) > 1e-9 {
			t.Errorf("%s: trace after channel = %v, want 1", name, tr)
		}
	}
	mk("depolarizing", func() (*QuantumError, error) { return Depolarizing(0.3, 1) })
	mk("amplitude damping", func() (*QuantumError, error) { return AmplitudeDamping(0.2) })
	mk("phase damping", func() (*QuantumError, error) { return PhaseDamping(0.2) })
	mk("thermal relaxation", func() (*QuantumError, error) { return ThermalRelaxation(30e-6, 40e-6, 50e-9) })
}
