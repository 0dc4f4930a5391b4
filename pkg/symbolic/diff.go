package symbolic

// Diff computes the partial derivative of e with respect to the symbol
// named wrt using the textbook rules: linearity, the product rule, and
// d/dx sin(u) = cos(u)*u', d/dx cos(u) = -sin(u)*u'. Unsupported primitives
// never arise since the signature is closed under these seven variants, but
// a node built outside this package's constructors still fails cleanly.
func (e *Expr) Diff(wrt string) (*Expr, error) {
	switch e.kind {
	case KindConst:
		return Const(0), nil
	case KindSym:
		if e.name == wrt {
			return Const(1), nil
		}
		return Const(0), nil
	case KindNeg:
		da, err := e.a.Diff(wrt)
		if err != nil {
			return nil, err
		}
		return Neg(da), nil
	case KindAdd:
		da, err := e.a.Diff(wrt)
		if err != nil {
			return nil, err
		}
		db, err := e.b.Diff(wrt)
		if err != nil {
			return nil, err
		}
		return Add(da, db), nil
	case KindMul:
		da, err := e.a.Diff(wrt)
		if err != nil {
			return nil, err
		}
		db, err := e.b.Diff(wrt)
		if err != nil {
			return nil, err
		}
		return Add(Mul(da, e.b), Mul(e.a, db)), nil
	case KindSin:
		du, err := e.a.Diff(wrt)
		if err != nil {
			return nil, err
		}
		return Mul(Cos(e.a), du), nil
	case KindCos:
		du, err := e.a.Diff(wrt)
		if err != nil {
			return nil, err
		}
		return Neg(Mul(Sin(e.a), du)), nil
	}
	return nil, ErrMalformedExpression
}
