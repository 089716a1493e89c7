// Package quantum provides a small density-matrix simulator for few-qubit
// circuits, including qiskit-style noise models built from Kraus channels.
// It is not a general-purpose quantum simulator: gates are limited to the
// one- and two-qubit set the superdense coding protocol needs, and states
// are represented as dense matrices, which caps practical circuit width at
// around a dozen qubits.
package quantum

import (
	"fmt"
	"strings"
)

// MaxQubits bounds circuit width. A dense density matrix over n qubits costs
// 4^n complex entries, so anything much wider than this is a usage error.
const MaxQubits = 12

// A Gate is a single operation placed on a circuit.
type Gate struct {
	// Name identifies the operation: "h", "x", "z", "cx", "measure" or
	// "barrier".
	Name string

	// Qubits lists the qubits the gate acts on. For "cx" the first entry is
	// the control and the second the target.
	Qubits []int

	// CBit is the classical bit receiving a measurement outcome, or -1.
	CBit int

	// Label annotates barriers; empty otherwise.
	Label string
}

// A Circuit is an ordered list of gates over fixed quantum and classical
// registers. The zero value is not usable; construct circuits with New.
type Circuit struct {
	Qubits int
	CBits  int
	Gates  []Gate
}

// New returns an empty circuit over the given register sizes.
func New(qubits, cbits int) *Circuit {
	return &Circuit{Qubits: qubits, CBits: cbits}
}

// H appends a Hadamard gate on q.
func (c *Circuit) H(q int) *Circuit { return c.add("h", []int{q}) }

// X appends a Pauli-X gate on q.
func (c *Circuit) X(q int) *Circuit { return c.add("x", []int{q}) }

// Z appends a Pauli-Z gate on q.
func (c *Circuit) Z(q int) *Circuit { return c.add("z", []int{q}) }

// CX appends a controlled-NOT with the given control and target qubits.
func (c *Circuit) CX(control, target int) *Circuit {
	return c.add("cx", []int{control, target})
}

// Measure appends a measurement of qubit q into classical bit cbit.
func (c *Circuit) Measure(q, cbit int) *Circuit {
	c.Gates = append(c.Gates, Gate{Name: "measure", Qubits: []int{q}, CBit: cbit})
	return c
}

// Barrier appends a labeled no-op marking a protocol phase.
func (c *Circuit) Barrier(label string) *Circuit {
	c.Gates = append(c.Gates, Gate{Name: "barrier", CBit: -1, Label: label})
	return c
}

func (c *Circuit) add(name string, qubits []int) *Circuit {
	c.Gates = append(c.Gates, Gate{Name: name, Qubits: qubits, CBit: -1})
	return c
}

// validate checks gate and register coherence ahead of simulation.
func (c *Circuit) validate() error {
	if c.Qubits < 1 || c.Qubits > MaxQubits {
		return fmt.Errorf("circuit must have between 1 and %d qubits, has %d", MaxQubits, c.Qubits)
	}
	for _, g := range c.Gates {
		for _, q := range g.Qubits {
			if q < 0 || q >= c.Qubits {
				return fmt.Errorf("gate %q references qubit %d outside register of size %d", g.Name, q, c.Qubits)
			}
		}
		switch g.Name {
		case "h", "x", "z":
			if len(g.Qubits) != 1 {
				return fmt.Errorf("gate %q takes one qubit, got %d", g.Name, len(g.Qubits))
			}
		case "cx":
			if len(g.Qubits) != 2 {
				return fmt.Errorf("cx takes two qubits, got %d", len(g.Qubits))
			}
			if g.Qubits[0] == g.Qubits[1] {
				return fmt.Errorf("cx control and target must differ, both are %d", g.Qubits[0])
			}
		case "measure":
			if g.CBit < 0 || g.CBit >= c.CBits {
				return fmt.Errorf("measurement targets classical bit %d outside register of size %d", g.CBit, c.CBits)
			}
		case "barrier":
		default:
			return fmt.Errorf("unknown gate %q", g.Name)
		}
	}
	return nil
}

// Draw renders an ASCII diagram of the circuit, one wire per qubit. Output
// stays plain ASCII so it survives consoles stuck on legacy code pages.
func (c *Circuit) Draw() string {
	cols := make([][]string, 0, len(c.Gates))
	for _, g := range c.Gates {
		col := make([]string, c.Qubits)
		for i := range col {
			col[i] = "-"
		}
		switch g.Name {
		case "barrier":
			for i := range col {
				col[i] = ":"
			}
		case "cx":
			ctrl, tgt := g.Qubits[0], g.Qubits[1]
			col[ctrl] = "o"
			col[tgt] = "X"
			lo, hi := min(ctrl, tgt), max(ctrl, tgt)
			for q := lo + 1; q < hi; q++ {
				col[q] = "|"
			}
		case "measure":
			col[g.Qubits[0]] = fmt.Sprintf("M%d", g.CBit)
		default:
			col[g.Qubits[0]] = strings.ToUpper(g.Name)
		}
		width := 0
		for _, cell := range col {
			width = max(width, len(cell))
		}
		for i, cell := range col {
			col[i] = cell + strings.Repeat("-", width-len(cell))
		}
		cols = append(cols, col)
	}

	var sb strings.Builder
	for q := 0; q < c.Qubits; q++ {
		fmt.Fprintf(&sb, "q%d: -", q)
		for _, col := range cols {
			sb.WriteString(col[q])
			sb.WriteString("-")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
