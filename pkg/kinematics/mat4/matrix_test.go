package mat4

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEye(t *testing.T) {
	m := Eye()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			want := 0.0
			if row == col {
				want = 1.0
			}
			assert.Equal(t, want, m.Get(row, col))
		}
	}
}

func TestMul_Identity(t *testing.T) {
	a := New(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		0, 0, 0, 1,
	)
	got := a.Mul(Eye())
	assert.Equal(t, a, got)
}

func TestMul_Translation(t *testing.T) {
	translate := Eye()
	translate.Set(0, 3, 1)
	translate.Set(1, 3, 2)
	translate.Set(2, 3, 3)

	got := translate.Mul(Eye())
	assert.Equal(t, 1.0, got.Get(0, 3))
	assert.Equal(t, 2.0, got.Get(1, 3))
	assert.Equal(t, 3.0, got.Get(2, 3))
}

func TestCol(t *testing.T) {
	m := New(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)
	assert.Equal(t, [4]float64{4, 8, 12, 16}, m.Col(3))
}
