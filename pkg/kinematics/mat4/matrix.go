// Package mat4 is a minimal row-major 4x4 float64 matrix, the numeric
// counterpart of the symbolic DH transforms: it is what a Transform's
// Evaluate and a Chain's Positions hand back once every symbol has been
// substituted away.
package mat4

// M is a row-major flattened 4x4 matrix: M[row*4+col].
type M [16]float64

// New builds an M from 16 row-major values.
func New(vals ...float64) M {
	var m M
	copy(m[:], vals)
	return m
}

// Eye returns the 4x4 identity.
func Eye() M {
	return M{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func (m M) rowIdx(row int) int { return row * 4 }

// Get returns the entry at (row, col).
func (m M) Get(row, col int) float64 { return m[m.rowIdx(row)+col] }

// Set writes the entry at (row, col).
func (m *M) Set(row, col int, v float64) { m[m.rowIdx(row)+col] = v }

// Col returns column col as a 4-vector.
func (m M) Col(col int) [4]float64 {
	var v [4]float64
	for i := range v {
		v[i] = m[col]
		col += 4
	}
	return v
}

// Mul returns m * other.
func (m M) Mul(other M) M {
	var dst M
	m.MulTo(other, &dst)
	return dst
}

// MulTo writes m * other into dst, standard row-major 4x4 product.
func (m M) MulTo(other M, dst *M) {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m.Get(row, k) * other.Get(k, col)
			}
			dst.Set(row, col, sum)
		}
	}
}
