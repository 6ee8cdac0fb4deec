package ed25519

import "errors"

var (
	// ErrInvalidPointEncoding is returned when a compressed point or
	// Montgomery u-coordinate is the wrong length or not canonically
	// reduced below the field prime.
	ErrInvalidPointEncoding = errors.New("invalid point encoding")
	// ErrPointNotOnCurve is returned when an encoding decodes to a
	// coordinate with no corresponding curve point.
	ErrPointNotOnCurve = errors.New("point is not on the curve")
	// ErrInvalidScalarRange is returned when a scalar encoding is not
	// reduced below the group order.
	ErrInvalidScalarRange = errors.New("scalar is out of range")
	// ErrDegenerateInput is returned when an operation would divide by
	// zero, eg. inverting a zero scalar or converting the Montgomery
	// u-coordinate p-1.
	ErrDegenerateInput = errors.New("degenerate input")
)
