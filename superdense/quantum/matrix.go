package quantum

import "math/cmplx"

// A matrix is a small, dense, row-major complex matrix. The circuits this
// package simulates never exceed a handful of qubits, so there is no value in
// anything cleverer than the naive representation.
type matrix struct {
	dim int
	a   []complex128
}

func newMatrix(dim int) matrix {
	return matrix{dim: dim, a: make([]complex128, dim*dim)}
}

func identity(dim int) matrix {
	m := newMatrix(dim)
	for i := 0; i < dim; i++ {
		m.a[i*dim+i] = 1
	}
	return m
}

func matrixFromSlice(dim int, a []complex128) matrix {
	b := make([]complex128, dim*dim)
	copy(b, a)
	return matrix{dim: dim, a: b}
}

func (m matrix) at(i, j int) complex128 {
	return m.a[i*m.dim+j]
}

func (m matrix) set(i, j int, v complex128) {
	m.a[i*m.dim+j] = v
}

// mul computes the matrix product m*b.
func (m matrix) mul(b matrix) matrix {
	out := newMatrix(m.dim)
	for i := 0; i < m.dim; i++ {
		for k := 0; k < m.dim; k++ {
			mik := m.at(i, k)
			if mik == 0 {
				continue
			}
			for j := 0; j < m.dim; j++ {
				out.a[i*m.dim+j] += mik * b.at(k, j)
			}
		}
	}
	return out
}

// dagger computes the conjugate transpose of m.
func (m matrix) dagger() matrix {
	out := newMatrix(m.dim)
	for i := 0; i < m.dim; i++ {
		for j := 0; j < m.dim; j++ {
			out.set(j, i, cmplx.Conj(m.at(i, j)))
		}
	}
	return out
}

func (m matrix) scale(c complex128) matrix {
	out := newMatrix(m.dim)
	for i, v := range m.a {
		out.a[i] = c * v
	}
	return out
}

func (m matrix) addInPlace(b matrix) {
	for i := range m.a {
		m.a[i] += b.a[i]
	}
}

// kron computes the Kronecker product of a and b, where a acts on the
// higher-order qubits.
func kron(a, b matrix) matrix {
	dim := a.dim * b.dim
	out := newMatrix(dim)
	for ia := 0; ia < a.dim; ia++ {
		for ja := 0; ja < a.dim; ja++ {
			av := a.at(ia, ja)
			if av == 0 {
				continue
			}
			for ib := 0; ib < b.dim; ib++ {
				for jb := 0; jb < b.dim; jb++ {
					out.set(ia*b.dim+ib, ja*b.dim+jb, av*b.at(ib, jb))
				}
			}
		}
	}
	return out
}

// expand lifts an operator acting on the given target qubits to the full
// n-qubit Hilbert space. Qubit indexing is little-endian: qubit 0 is the least
// significant bit of a basis-state index. For multi-qubit operators,
// targets[0] addresses the operator's least significant qubit.
func expand(op matrix, targets []int, n int) matrix {
	dim := 1 << n
	var tmask int
	for _, t := range targets {
		tmask |= 1 << t
	}
	out := newMatrix(dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if i&^tmask != j&^tmask {
				continue
			}
			si, sj := 0, 0
			for k, t := range targets {
				si |= ((i >> t) & 1) << k
				sj |= ((j >> t) & 1) << k
			}
			out.set(i, j, op.at(si, sj))
		}
	}
	return out
}

// isIdentity reports whether m is the identity to within tol.
func (m matrix) isIdentity(tol float64) bool {
	for i := 0; i < m.dim; i++ {
		for j := 0; j < m.dim; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			if cmplx.Abs(m.at(i, j)-want) > tol {
				return false
			}
		}
	}
	return true
}
