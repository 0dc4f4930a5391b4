package jacobian

import "errors"

// ErrSingular is returned when the Jacobian's SVD factorisation fails.
var ErrSingular = errors.New("jacobian: singular value decomposition failed")
