package quantum

import (
	"fmt"
	"math"
)

var (
	gateI = matrixFromSlice(2, []complex128{
		1, 0,
		0, 1,
	})
	gateX = matrixFromSlice(2, []complex128{
		0, 1,
		1, 0,
	})
	gateY = matrixFromSlice(2, []complex128{
		0, -1i,
		1i, 0,
	})
	gateZ = matrixFromSlice(2, []complex128{
		1, 0,
		0, -1,
	})
	gateH = matrixFromSlice(2, []complex128{
		complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0),
		complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0),
	})

	// gateCX is the controlled-NOT in the little-endian two-qubit basis with
	// the control on the operator's low-order qubit: basis states |q1 q0>
	// with indices 1 (q0=1, q1=0) and 3 (q0=1, q1=1) swap.
	gateCX = matrixFromSlice(4, []complex128{
		1, 0, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
		0, 1, 0, 0,
	})
)

// unitaryFor returns the unitary for a named gate, or ok=false for
// non-unitary circuit elements (measurements, barriers).
func unitaryFor(name string) (matrix, bool) {
	switch name {
	case "h":
		return gateH, true
	case "x":
		return gateX, true
	case "z":
		return gateZ, true
	case "cx":
		return gateCX, true
	}
	return matrix{}, false
}

// GateArity returns the number of qubits a named gate acts on, or an error
// for names that cannot carry a noise channel.
func GateArity(name string) (int, error) {
	switch name {
	case "h", "x", "y", "z":
		return 1, nil
	case "cx":
		return 2, nil
	}
	return 0, fmt.Errorf("gate %q cannot carry a quantum error", name)
}
