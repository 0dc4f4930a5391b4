package symbolic

import "math"

// Subst replaces every occurrence of the free symbol named name with the
// expression with, structurally, leaving every other node shape unchanged.
// Transform construction uses this twice: once to bind the DH placeholder
// symbols to their numeric values, and once to collapse the "zero"/"one"
// literal placeholders introduced during matrix construction into true
// numeric constants.
func (e *Expr) Subst(name string, with *Expr) *Expr {
	switch e.kind {
	case KindConst:
		return e
	case KindSym:
		if e.name == name {
			return with
		}
		return e
	case KindNeg:
		return Neg(e.a.Subst(name, with))
	case KindAdd:
		return Add(e.a.Subst(name, with), e.b.Subst(name, with))
	case KindMul:
		return Mul(e.a.Subst(name, with), e.b.Subst(name, with))
	case KindSin:
		return Sin(e.a.Subst(name, with))
	case KindCos:
		return Cos(e.a.Subst(name, with))
	}
	return e
}

// Eval coerces e to a float64, requiring every free symbol to have been
// eliminated beforehand (via Subst). It returns ok=false the moment it
// encounters a KindSym node, letting the caller report UnresolvedSymbol
// with the offending name.
func (e *Expr) Eval() (val float64, sym string, ok bool) {
	switch e.kind {
	case KindConst:
		return e.val, "", true
	case KindSym:
		return 0, e.name, false
	case KindNeg:
		v, s, ok := e.a.Eval()
		if !ok {
			return 0, s, false
		}
		return -v, "", true
	case KindAdd:
		va, s, ok := e.a.Eval()
		if !ok {
			return 0, s, false
		}
		vb, s, ok := e.b.Eval()
		if !ok {
			return 0, s, false
		}
		return va + vb, "", true
	case KindMul:
		va, s, ok := e.a.Eval()
		if !ok {
			return 0, s, false
		}
		vb, s, ok := e.b.Eval()
		if !ok {
			return 0, s, false
		}
		return va * vb, "", true
	case KindSin:
		v, s, ok := e.a.Eval()
		if !ok {
			return 0, s, false
		}
		return math.Sin(v), "", true
	case KindCos:
		v, s, ok := e.a.Eval()
		if !ok {
			return 0, s, false
		}
		return math.Cos(v), "", true
	}
	return 0, "", false
}
