package symbolic

import "errors"

// ErrMalformedExpression is returned when differentiation hits an
// unsupported primitive or a caller builds a structurally invalid node.
var ErrMalformedExpression = errors.New("symbolic: malformed expression")
