package quantum

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// A DensityMatrix holds the mixed state of an n-qubit register. Basis-state
// indexing is little-endian: qubit 0 is the least significant bit.
type DensityMatrix struct {
	qubits int
	m      matrix
}

// NewDensityMatrix returns the pure state |0...0><0...0| over n qubits.
func NewDensityMatrix(n int) *DensityMatrix {
	m := newMatrix(1 << n)
	m.set(0, 0, 1)
	return &DensityMatrix{qubits: n, m: m}
}

// Qubits returns the register width.
func (d *DensityMatrix) Qubits() int { return d.qubits }

// Trace returns the real trace of the state; it should always be 1.
func (d *DensityMatrix) Trace() float64 {
	var tr float64
	for i := 0; i < d.m.dim; i++ {
		tr += real(d.m.at(i, i))
	}
	return tr
}

// Probabilities returns the computational-basis outcome distribution, i.e.
// the real diagonal of the state.
func (d *DensityMatrix) Probabilities() []float64 {
	p := make([]float64, d.m.dim)
	for i := range p {
		p[i] = real(d.m.at(i, i))
	}
	return p
}

// applyUnitary conjugates the state: rho -> U rho U^dagger.
func (d *DensityMatrix) applyUnitary(u matrix) {
	d.m = u.mul(d.m).mul(u.dagger())
}

// applyChannel maps the state through a Kraus channel already expanded to
// the full register: rho -> sum K rho K^dagger.
func (d *DensityMatrix) applyChannel(kraus []matrix) {
	out := newMatrix(d.m.dim)
	for _, k := range kraus {
		out.addInPlace(k.mul(d.m).mul(k.dagger()))
	}
	d.m = out
}

// Counts tallies measurement outcomes keyed by classical bit string. Keys
// follow the qiskit convention: the most significant classical bit is
// leftmost, so measuring qubit a into c[1] and qubit b into c[0] yields keys
// of the form "<a><b>".
type Counts map[string]int

// Total returns the number of recorded shots.
func (c Counts) Total() int {
	var n int
	for _, v := range c {
		n += v
	}
	return n
}

// Rate returns the fraction of shots that produced the given outcome.
func (c Counts) Rate(outcome string) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c[outcome]) / float64(total)
}

// Outcomes returns the observed keys in lexicographic order.
func (c Counts) Outcomes() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// A Simulator evolves circuits as density matrices, optionally under a noise
// model, and samples measurement shots from the exact outcome distribution.
type Simulator struct {
	noise *NoiseModel
	rand  *rand.Rand
}

// NewSimulator returns a simulator with the given noise model (nil for ideal
// evolution). A seeded r makes shot sampling reproducible; if nil, a
// time-seeded source is used.
func NewSimulator(noise *NoiseModel, r *rand.Rand) *Simulator {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulator{noise: noise, rand: r}
}

// Distribution evolves the circuit and returns the exact probability of each
// classical outcome string. Circuits without measurements yield an empty
// distribution.
func (s *Simulator) Distribution(c *Circuit) (map[string]float64, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	rho := NewDensityMatrix(c.Qubits)
	var measures []Gate
	for _, g := range c.Gates {
		switch g.Name {
		case "barrier":
			continue
		case "measure":
			measures = append(measures, g)
			continue
		}
		u, ok := unitaryFor(g.Name)
		if !ok {
			return nil, fmt.Errorf("gate %q has no unitary", g.Name)
		}
		rho.applyUnitary(expand(u, g.Qubits, c.Qubits))
		for _, qe := range s.noise.errorsFor(g.Name) {
			full := make([]matrix, 0, len(qe.kraus))
			for _, k := range qe.kraus {
				full = append(full, expand(k, g.Qubits, c.Qubits))
			}
			rho.applyChannel(full)
		}
	}

	dist := make(map[string]float64)
	if len(measures) == 0 {
		return dist, nil
	}
	for i, p := range rho.Probabilities() {
		if p <= 0 {
			continue
		}
		dist[outcomeKey(i, measures, c.CBits)] += p
	}
	return dist, nil
}

// Run evolves the circuit and samples shots outcomes from its distribution.
func (s *Simulator) Run(c *Circuit, shots int) (Counts, error) {
	dist, err := s.Distribution(c)
	if err != nil {
		return nil, err
	}
	return s.Sample(dist, shots), nil
}

// Sample draws shots outcomes from a distribution previously computed by
// Distribution, without re-evolving the circuit.
func (s *Simulator) Sample(dist map[string]float64, shots int) Counts {
	counts := make(Counts)
	if len(dist) == 0 || shots <= 0 {
		return counts
	}

	// Stable iteration order so a seeded Rand reproduces exactly.
	keys := make([]string, 0, len(dist))
	for k := range dist {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for i := 0; i < shots; i++ {
		r := s.rand.Float64()
		var cum float64
		picked := keys[len(keys)-1]
		for _, k := range keys {
			cum += dist[k]
			if r < cum {
				picked = k
				break
			}
		}
		counts[picked]++
	}
	return counts
}

// outcomeKey maps a basis-state index through the circuit's measurements to
// a classical bit string. Classical bit c lands at position cbits-1-c, most
// significant bit leftmost.
func outcomeKey(state int, measures []Gate, cbits int) string {
	key := make([]byte, cbits)
	for i := range key {
		key[i] = '0'
	}
	for _, m := range measures {
		bit := (state >> m.Qubits[0]) & 1
		key[cbits-1-m.CBit] = byte('0' + bit)
	}
	return string(key)
}
