package dh

import "errors"

var (
	// ErrInvalidJointKind is returned when a link constructor sees a kind
	// outside {Revolute, Prismatic, Static}.
	ErrInvalidJointKind = errors.New("dh: invalid joint kind")

	// ErrNotActuated is returned when the actuated joint symbol of a
	// Static link is requested.
	ErrNotActuated = errors.New("dh: link is not actuated")

	// ErrUnresolvedSymbol is returned when numeric evaluation leaves free
	// symbols behind.
	ErrUnresolvedSymbol = errors.New("dh: unresolved symbol after evaluation")

	// ErrJointUnderflow is returned when fewer joint values are supplied
	// than the chain has actuated joints.
	ErrJointUnderflow = errors.New("dh: fewer joint values than actuated joints")
)
