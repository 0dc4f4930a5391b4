package jacobian

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityPose() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func TestAssemble_TranslationOnly(t *testing.T) {
	pose := identityPose()
	// A joint that purely translates along X has a zero rotational column.
	diff := Matrix4{
		{0, 0, 0, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	J := Assemble(pose, []Matrix4{diff})

	assert.Equal(t, 1.0, J.At(0, 0))
	assert.Equal(t, 0.0, J.At(1, 0))
	assert.Equal(t, 0.0, J.At(2, 0))
	assert.InDelta(t, 0.0, J.At(3, 0), 1e-12)
	assert.InDelta(t, 0.0, J.At(4, 0), 1e-12)
	assert.InDelta(t, 0.0, J.At(5, 0), 1e-12)

	rows, cols := J.Dims()
	assert.Equal(t, 6, rows)
	assert.Equal(t, 1, cols)
}

func TestPseudoInverse_Dimensions(t *testing.T) {
	pose := identityPose()
	diffs := []Matrix4{
		{{0, 0, 0, 1}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 0, 0, 1}, {0, 0, 0, 0}, {0, 0, 0, 0}},
	}
	J := Assemble(pose, diffs)

	Jinv, err := PseudoInverse(J)
	require.NoError(t, err)

	rows, cols := Jinv.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 6, cols)
}
