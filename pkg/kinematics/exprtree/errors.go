package exprtree

import "errors"

// ErrMalformedExpression is returned when a stringified matrix entry
// violates the additive-monomial grammar the parser expects.
var ErrMalformedExpression = errors.New("exprtree: malformed expression")
