package quantum

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotCPTP is returned when a set of Kraus operators does not describe a
// completely positive, trace preserving channel.
var ErrNotCPTP = errors.New("kraus operators do not sum to identity")

// cptpTol is the tolerance used when checking channel trace preservation.
const cptpTol = 1e-9

// A QuantumError is a noise channel described by Kraus operators. Applied to
// a state rho it produces sum_i K_i rho K_i^dagger.
type QuantumError struct {
	kraus  []matrix
	qubits int
}

// Qubits returns the number of qubits the channel acts on.
func (e *QuantumError) Qubits() int { return e.qubits }

// NewQuantumError builds a channel from explicit Kraus operators, each given
// as a flattened row-major d x d complex matrix where d = 2^qubits. The
// operators must satisfy the completeness relation sum K^dagger K = I; a
// malformed set (e.g. a hand-written "unitary" that isn't) is rejected
// rather than silently producing unphysical states.
func NewQuantumError(ops [][]complex128, qubits int) (*QuantumError, error) {
	if qubits < 1 {
		return nil, fmt.Errorf("quantum error must act on at least one qubit, got %d", qubits)
	}
	if len(ops) == 0 {
		return nil, errors.New("quantum error needs at least one kraus operator")
	}
	dim := 1 << qubits
	kraus := make([]matrix, 0, len(ops))
	for i, op := range ops {
		if len(op) != dim*dim {
			return nil, fmt.Errorf("kraus operator %d has %d entries, want %d for a %d-qubit channel", i, len(op), dim*dim, qubits)
		}
		kraus = append(kraus, matrixFromSlice(dim, op))
	}
	e := &QuantumError{kraus: kraus, qubits: qubits}
	if err := e.checkComplete(); err != nil {
		return nil, err
	}
	return e, nil
}

func newQuantumError(kraus []matrix, qubits int) (*QuantumError, error) {
	e := &QuantumError{kraus: kraus, qubits: qubits}
	if err := e.checkComplete(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *QuantumError) checkComplete() error {
	dim := 1 << e.qubits
	sum := newMatrix(dim)
	for _, k := range e.kraus {
		if k.dim != dim {
			return fmt.Errorf("kraus operator dimension %d does not match %d-qubit channel", k.dim, e.qubits)
		}
		sum.addInPlace(k.dagger().mul(k))
	}
	if !sum.isIdentity(cptpTol) {
		return ErrNotCPTP
	}
	return nil
}

// Depolarizing returns the depolarizing channel with parameter p on the given
// number of qubits: the state is left alone with probability 1 - p(d^2-1)/d^2
// and hit with each non-identity Pauli with probability p/d^2.
func Depolarizing(p float64, qubits int) (*QuantumError, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("depolarizing parameter must be in [0, 1], got %v", p)
	}
	if qubits != 1 && qubits != 2 {
		return nil, fmt.Errorf("depolarizing channel supports 1 or 2 qubits, got %d", qubits)
	}
	paulis := []matrix{gateI, gateX, gateY, gateZ}
	var ops []matrix
	if qubits == 1 {
		ops = paulis
	} else {
		for _, a := range paulis {
			for _, b := range paulis {
				ops = append(ops, kron(a, b))
			}
		}
	}
	d2 := float64(len(ops))
	kraus := make([]matrix, 0, len(ops))
	for i, op := range ops {
		w := p / d2
		if i == 0 {
			w = 1 - p*(d2-1)/d2
		}
		kraus = append(kraus, op.scale(complex(math.Sqrt(w), 0)))
	}
	return newQuantumError(kraus, qubits)
}

// AmplitudeDamping returns the single-qubit energy relaxation channel with
// decay probability gamma.
func AmplitudeDamping(gamma float64) (*QuantumError, error) {
	if gamma < 0 || gamma > 1 {
		return nil, fmt.Errorf("damping parameter must be in [0, 1], got %v", gamma)
	}
	k0 := matrixFromSlice(2, []complex128{
		1, 0,
		0, complex(math.Sqrt(1-gamma), 0),
	})
	k1 := matrixFromSlice(2, []complex128{
		0, complex(math.Sqrt(gamma), 0),
		0, 0,
	})
	return newQuantumError([]matrix{k0, k1}, 1)
}

// PhaseDamping returns the single-qubit pure dephasing channel with
// parameter lambda.
func PhaseDamping(lambda float64) (*QuantumError, error) {
	if lambda < 0 || lambda > 1 {
		return nil, fmt.Errorf("damping parameter must be in [0, 1], got %v", lambda)
	}
	k0 := matrixFromSlice(2, []complex128{
		1, 0,
		0, complex(math.Sqrt(1-lambda), 0),
	})
	k1 := matrixFromSlice(2, []complex128{
		0, 0,
		0, complex(math.Sqrt(lambda), 0),
	})
	return newQuantumError([]matrix{k0, k1}, 1)
}

// ThermalRelaxation returns the single-qubit channel describing T1 energy
// relaxation and T2 dephasing over a gate of the given duration. All three
// arguments share a time unit. Requires 0 < t2 <= 2*t1, the physical regime;
// the channel is built as amplitude damping composed with pure dephasing
// chosen so that coherences decay as exp(-t/t2).
func ThermalRelaxation(t1, t2, gateTime float64) (*QuantumError, error) {
	if t1 <= 0 || t2 <= 0 {
		return nil, fmt.Errorf("relaxation times must be positive, got t1=%v t2=%v", t1, t2)
	}
	if t2 > 2*t1 {
		return nil, fmt.Errorf("thermal relaxation requires t2 <= 2*t1, got t1=%v t2=%v", t1, t2)
	}
	if gateTime < 0 {
		return nil, fmt.Errorf("gate time must be non-negative, got %v", gateTime)
	}
	gamma := 1 - math.Exp(-gateTime/t1)
	// Residual dephasing after amplitude damping already shrinks coherences
	// by exp(-t/2t1).
	lambda := 1 - math.Exp(gateTime/t1-2*gateTime/t2)
	ad, err := AmplitudeDamping(gamma)
	if err != nil {
		return nil, err
	}
	pd, err := PhaseDamping(lambda)
	if err != nil {
		return nil, err
	}
	return Compose(ad, pd)
}

// Compose returns the channel applying a then b. Both must act on the same
// number of qubits.
func Compose(a, b *QuantumError) (*QuantumError, error) {
	if a.qubits != b.qubits {
		return nil, fmt.Errorf("cannot compose a %d-qubit channel with a %d-qubit channel", a.qubits, b.qubits)
	}
	var kraus []matrix
	for _, kb := range b.kraus {
		for _, ka := range a.kraus {
			kraus = append(kraus, kb.mul(ka))
		}
	}
	return newQuantumError(kraus, a.qubits)
}

// A NoiseModel attaches quantum errors to named gates. Each attached error is
// applied after the ideal gate, on the qubits the gate acted on.
type NoiseModel struct {
	gateErrors map[string][]*QuantumError
}

// NewNoiseModel returns an empty noise model.
func NewNoiseModel() *NoiseModel {
	return &NoiseModel{gateErrors: make(map[string][]*QuantumError)}
}

// AddAllQubitQuantumError attaches err to every occurrence of the named
// gates, regardless of which qubits they act on. The channel arity must match
// each gate's arity: a one-qubit channel cannot decorate a two-qubit gate.
func (nm *NoiseModel) AddAllQubitQuantumError(err *QuantumError, gates []string) error {
	for _, g := range gates {
		arity, aerr := GateArity(g)
		if aerr != nil {
			return aerr
		}
		if arity != err.Qubits() {
			return fmt.Errorf("cannot attach %d-qubit channel to %d-qubit gate %q", err.Qubits(), arity, g)
		}
	}
	for _, g := range gates {
		nm.gateErrors[g] = append(nm.gateErrors[g], err)
	}
	return nil
}

// errorsFor returns the channels attached to a gate name.
func (nm *NoiseModel) errorsFor(name string) []*QuantumError {
	if nm == nil {
		return nil
	}
	return nm.gateErrors[name]
}
