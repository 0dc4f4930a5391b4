// Package symbolic implements the minimal tagged-variant CAS the kinematics
// compiler needs: constants, free symbols, negation, sum, product and the
// two trigonometric primitives sin/cos. It intentionally does not attempt
// general symbolic algebra (no factoring, no equation solving) — only what
// building and differentiating a DH transform chain requires.
package symbolic

import (
	"math"
	"strconv"
)

// Kind tags the variant a *Expr node holds.
type Kind int

const (
	KindConst Kind = iota
	KindSym
	KindNeg
	KindAdd
	KindMul
	KindSin
	KindCos
)

// Expr is a node in the expression tree. Zero value is not meaningful;
// always construct via the Const/Sym/Neg/Add/Mul/Sin/Cos helpers.
type Expr struct {
	kind Kind
	val  float64
	name string
	a, b *Expr
}

func Const(v float64) *Expr { return &Expr{kind: KindConst, val: v} }
func Sym(name string) *Expr { return &Expr{kind: KindSym, name: name} }

// Neg builds -e, folding -0 to 0 and a double negation --x to x, so the
// serialised form never carries two adjacent signs.
func Neg(e *Expr) *Expr {
	if e.IsZero() {
		return e
	}
	if e.kind == KindNeg {
		return e.a
	}
	return &Expr{kind: KindNeg, a: e}
}

// Add builds a+b, folding the identity element away immediately: the DH
// matrix construction binds placeholder symbols to Const(0)/Const(1), and
// without this fold every substituted entry would carry spurious "+0"
// terms all the way to the emitted code.
func Add(a, b *Expr) *Expr {
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	return &Expr{kind: KindAdd, a: a, b: b}
}

func Sub(a, b *Expr) *Expr { return Add(a, Neg(b)) }

// Mul builds a*b, distributing over Add/Neg so the result is always kept
// in expanded sum-of-products form: no KindMul node ever holds a KindAdd
// (directly or through a KindNeg) as either operand. String() renders
// KindMul by simple concatenation with no parentheses, and the downstream
// stringifier/parser pair has no notion of grouping either — an
// unexpanded product of sums would silently lose factors once it is
// serialised and re-parsed. Keeping every product expanded at
// construction time, rather than patching the serialiser, is what makes
// every consumer (Diff, Subst, Eval, String) agree on the same tree.
// Mul also folds away the 0/1 identity elements for the same reason Add
// does: the zero/one DH placeholders would otherwise leave literal
// "0*c_q1"/"s_q1*1" factors in every substituted entry.
func Mul(a, b *Expr) *Expr {
	if a.IsZero() || b.IsZero() {
		return Const(0)
	}
	if a.IsOne() {
		return b
	}
	if b.IsOne() {
		return a
	}
	if a.kind == KindAdd {
		return Add(Mul(a.a, b), Mul(a.b, b))
	}
	if b.kind == KindAdd {
		return Add(Mul(a, b.a), Mul(a, b.b))
	}
	if a.kind == KindNeg {
		return Neg(Mul(a.a, b))
	}
	if b.kind == KindNeg {
		return Neg(Mul(a, b.a))
	}
	return &Expr{kind: KindMul, a: a, b: b}
}

// Sin builds sin(e); a constant argument is evaluated immediately, so bound
// DH constants reach the serialised form as numeric literals.
func Sin(e *Expr) *Expr {
	if e.kind == KindConst {
		return Const(math.Sin(e.val))
	}
	return &Expr{kind: KindSin, a: e}
}

// Cos builds cos(e), evaluating a constant argument immediately like Sin.
func Cos(e *Expr) *Expr {
	if e.kind == KindConst {
		return Const(math.Cos(e.val))
	}
	return &Expr{kind: KindCos, a: e}
}

// Kind reports the node's variant.
func (e *Expr) Kind() Kind { return e.kind }

// IsZero reports whether e is the literal constant 0.
func (e *Expr) IsZero() bool { return e.kind == KindConst && e.val == 0 }

// IsOne reports whether e is the literal constant 1.
func (e *Expr) IsOne() bool { return e.kind == KindConst && e.val == 1 }

// String renders e using the engine's stable textual convention: monomials
// joined by "+"/"-", factors by "*", unary sin/cos with a parenthesised
// argument, no whitespace inside tokens. Numeric literals use Go's shortest
// round-tripping decimal, which falls back to scientific notation ("NeM")
// for very small or very large magnitudes exactly as the spec requires.
func (e *Expr) String() string {
	switch e.kind {
	case KindConst:
		return strconv.FormatFloat(e.val, 'g', -1, 64)
	case KindSym:
		return e.name
	case KindNeg:
		return "-" + e.a.String()
	case KindAdd:
		rhs := e.b.String()
		if len(rhs) > 0 && rhs[0] == '-' {
			return e.a.String() + rhs
		}
		return e.a.String() + "+" + rhs
	case KindMul:
		return e.a.String() + "*" + e.b.String()
	case KindSin:
		return "sin(" + e.a.String() + ")"
	case KindCos:
		return "cos(" + e.a.String() + ")"
	}
	return ""
}
