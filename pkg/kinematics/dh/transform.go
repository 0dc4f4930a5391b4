// Package dh builds the per-link Denavit-Hartenberg transform and composes
// an ordered chain of them into a symbolic end-effector pose. It is the
// transform / chain composer subsystem: leaf dependency is pkg/symbolic,
// everything downstream (stringifier, parser, simplifier, emitter) reads
// the symbolic matrices this package owns.
package dh

import (
	"fmt"

	"github.com/itohio/dhgen/pkg/kinematics/mat4"
	"github.com/itohio/dhgen/pkg/symbolic"
)

// Kind is the joint kind of a DH link.
type Kind int

const (
	Revolute Kind = iota
	Prismatic
	Static
)

func (k Kind) String() string {
	switch k {
	case Revolute:
		return "revolute"
	case Prismatic:
		return "prismatic"
	case Static:
		return "static"
	default:
		return "invalid"
	}
}

// Transform is a single link's symbolic DH matrix. It owns the matrix; the
// Chain composer only reads it.
type Transform struct {
	id       int
	kind     Kind
	jointSym string // "" for Static links
	matrix   [4][4]*symbolic.Expr
}

// New builds the link transform for DH parameters (theta, d, a, alpha) of
// the given kind and joint id. Exactly one of theta (Revolute) or d
// (Prismatic) is left free as the symbol "q<id>"; the other three
// parameters are bound to their numeric values. Static links bind all four.
func New(theta, d, a, alpha float64, kind Kind, id int) (*Transform, error) {
	if kind != Revolute && kind != Prismatic && kind != Static {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJointKind, int(kind))
	}

	thetaSym := symbolic.Sym("theta")
	dSym := symbolic.Sym("d")
	aSym := symbolic.Sym("a")
	alphaSym := symbolic.Sym("alpha")
	zero := symbolic.Sym("zero")
	one := symbolic.Sym("one")

	m := buildDH(thetaSym, dSym, aSym, alphaSym, zero, one)

	var jointSym string
	switch kind {
	case Revolute:
		jointSym = fmt.Sprintf("q%d", id)
		q := symbolic.Sym(jointSym)
		m = substAll(m, "theta", q)
		m = substAll(m, "d", symbolic.Const(d))
		m = substAll(m, "a", symbolic.Const(a))
		m = substAll(m, "alpha", symbolic.Const(alpha))
	case Prismatic:
		jointSym = fmt.Sprintf("q%d", id)
		q := symbolic.Sym(jointSym)
		m = substAll(m, "d", q)
		m = substAll(m, "theta", symbolic.Const(theta))
		m = substAll(m, "a", symbolic.Const(a))
		m = substAll(m, "alpha", symbolic.Const(alpha))
	case Static:
		m = substAll(m, "theta", symbolic.Const(theta))
		m = substAll(m, "d", symbolic.Const(d))
		m = substAll(m, "a", symbolic.Const(a))
		m = substAll(m, "alpha", symbolic.Const(alpha))
	}
	m = substAll(m, "zero", symbolic.Const(0))
	m = substAll(m, "one", symbolic.Const(1))

	return &Transform{id: id, kind: kind, jointSym: jointSym, matrix: m}, nil
}

// buildDH constructs the literal DH matrix form from spec:
//
//	[ cosθ        -sinθ·cosα   sinθ·sinα    a·cosθ ]
//	[ sinθ         cosθ·cosα  -cosθ·sinα    a·sinθ ]
//	[   0          sinα        cosα           d    ]
//	[   0           0           0             1    ]
func buildDH(theta, d, a, alpha, zero, one *symbolic.Expr) [4][4]*symbolic.Expr {
	ct := symbolic.Cos(theta)
	st := symbolic.Sin(theta)
	ca := symbolic.Cos(alpha)
	sa := symbolic.Sin(alpha)

	return [4][4]*symbolic.Expr{
		{ct, symbolic.Neg(symbolic.Mul(st, ca)), symbolic.Mul(st, sa), symbolic.Mul(a, ct)},
		{st, symbolic.Mul(ct, ca), symbolic.Neg(symbolic.Mul(ct, sa)), symbolic.Mul(a, st)},
		{zero, sa, ca, d},
		{zero, zero, zero, one},
	}
}

func substAll(m [4][4]*symbolic.Expr, name string, with *symbolic.Expr) [4][4]*symbolic.Expr {
	var out [4][4]*symbolic.Expr
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = m[r][c].Subst(name, with)
		}
	}
	return out
}

// ID returns the link's joint id.
func (t *Transform) ID() int { return t.id }

// Kind returns the link's joint kind.
func (t *Transform) Kind() Kind { return t.kind }

// IsActuated reports whether this link has a free joint symbol.
func (t *Transform) IsActuated() bool { return t.kind != Static }

// ActuatedJointSymbol returns the symbol name of this link's free joint
// variable, or ErrNotActuated for a Static link.
func (t *Transform) ActuatedJointSymbol() (string, error) {
	if !t.IsActuated() {
		return "", fmt.Errorf("%w: link %d", ErrNotActuated, t.id)
	}
	return t.jointSym, nil
}

// Matrix returns the link's owned symbolic 4x4 matrix, joint symbol still
// free for actuated links. The chain composer reads this directly.
func (t *Transform) Matrix() [4][4]*symbolic.Expr { return t.matrix }

// Evaluate substitutes the free joint variable (if any) with jointValue and
// coerces every entry to float64, failing with ErrUnresolvedSymbol if any
// symbol remains.
func (t *Transform) Evaluate(jointValue float64) (mat4.M, error) {
	m := t.matrix
	if t.IsActuated() {
		m = substAll(m, t.jointSym, symbolic.Const(jointValue))
	}

	var out mat4.M
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			v, sym, ok := m[r][c].Eval()
			if !ok {
				return mat4.M{}, fmt.Errorf("%w: %s", ErrUnresolvedSymbol, sym)
			}
			out.Set(r, c, v)
		}
	}
	return out, nil
}
