package exprtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Empty(t *testing.T) {
	out, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestParse_SumOfProducts(t *testing.T) {
	out, err := Parse("a*b-c*d")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, Monomial{Positive: true, Factors: []string{"a", "b"}}, out[0])
	assert.Equal(t, Monomial{Positive: false, Factors: []string{"c", "d"}}, out[1])
}

func TestParse_LeadingSign(t *testing.T) {
	out, err := Parse("-a*c_q1*c_q3")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.False(t, out[0].Positive)
	assert.Equal(t, []string{"a", "c_q1", "c_q3"}, out[0].Factors)
}

func TestParse_SingleFactorNoOperator(t *testing.T) {
	out, err := Parse("q1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].Positive)
	assert.Equal(t, []string{"q1"}, out[0].Factors)
}

// Scientific exponent literals must survive tokenisation once guarded.
func TestParse_GuardedScientificLiteral(t *testing.T) {
	guarded := Stringify("1.06939e-26", nil)
	out, err := Parse(guarded)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"1.06939N26"}, out[0].Factors)
	assert.Equal(t, "1.06939e-26", RestoreExponents(out.String()))
}

// Parser round-trip: re-serialising a freshly parsed SumExpr yields a
// string equal to the input modulo leading "+".
func TestParse_RoundTrip(t *testing.T) {
	tests := []string{
		"a*b+c*d",
		"a*b-c*d",
		"-a*b+c*d",
		"q1",
	}
	for _, in := range tests {
		out, err := Parse(in)
		require.NoError(t, err)
		want := in
		if len(want) > 0 && want[0] == '+' {
			want = want[1:]
		}
		assert.Equal(t, want, out.String())
	}
}

func TestParse_MalformedDoubleOperator(t *testing.T) {
	_, err := Parse("a**b")
	require.ErrorIs(t, err, ErrMalformedExpression)
}

func TestStringify_SinCosSubstitution(t *testing.T) {
	got := Stringify("sin(q1)*cos(q3)", []string{"q1", "q3"})
	assert.Equal(t, "s_q1*c_q3", got)
}
