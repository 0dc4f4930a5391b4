package symbolic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpr_String(t *testing.T) {
	tests := []struct {
		name string
		e    *Expr
		want string
	}{
		{"const", Const(2), "2"},
		{"sym", Sym("q1"), "q1"},
		{"neg", Neg(Sym("q1")), "-q1"},
		{"add", Add(Sym("a"), Sym("b")), "a+b"},
		{"sub", Sub(Sym("a"), Sym("b")), "a-b"},
		{"mul", Mul(Sym("a"), Sym("b")), "a*b"},
		{"sin", Sin(Sym("q1")), "sin(q1)"},
		{"cos", Cos(Sym("q1")), "cos(q1)"},
		{"scientific", Const(1.03412e-13), "1.03412e-13"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.e.String())
		})
	}
}

func TestExpr_Diff(t *testing.T) {
	t.Run("product rule", func(t *testing.T) {
		e := Mul(Sym("q1"), Sym("a"))
		d, err := e.Diff("q1")
		require.NoError(t, err)
		v, _, ok := d.Subst("a", Const(3)).Eval()
		require.True(t, ok)
		assert.Equal(t, 3.0, v)
	})

	t.Run("sin rule", func(t *testing.T) {
		e := Sin(Sym("q1"))
		d, err := e.Diff("q1")
		require.NoError(t, err)
		v, _, ok := d.Subst("q1", Const(0)).Eval()
		require.True(t, ok)
		assert.InDelta(t, 1.0, v, 1e-12)
	})

	t.Run("cos rule", func(t *testing.T) {
		e := Cos(Sym("q1"))
		d, err := e.Diff("q1")
		require.NoError(t, err)
		v, _, ok := d.Subst("q1", Const(0)).Eval()
		require.True(t, ok)
		assert.InDelta(t, 0.0, v, 1e-12)
	})

	t.Run("chain rule through sum", func(t *testing.T) {
		e := Sin(Add(Sym("q1"), Sym("q3")))
		d, err := e.Diff("q1")
		require.NoError(t, err)
		e2 := d.Subst("q1", Const(math.Pi/4)).Subst("q3", Const(math.Pi/4))
		v, _, ok := e2.Eval()
		require.True(t, ok)
		assert.InDelta(t, math.Cos(math.Pi/2), v, 1e-12)
	})
}

func TestExpr_Subst(t *testing.T) {
	e := Add(Sym("zero"), Mul(Sym("one"), Sym("q1")))
	e = e.Subst("zero", Const(0)).Subst("one", Const(1))
	v, _, ok := e.Subst("q1", Const(5)).Eval()
	require.True(t, ok)
	assert.Equal(t, 5.0, v)
}

func TestExpr_Eval_UnresolvedSymbol(t *testing.T) {
	e := Sym("q1")
	_, sym, ok := e.Eval()
	assert.False(t, ok)
	assert.Equal(t, "q1", sym)
}
