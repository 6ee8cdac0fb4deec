package types

// Curve abstracts the group arithmetic needed by the signature scheme,
// so the arithmetic backend can be swapped without touching key
// derivation, signing, or verification.
type Curve interface {
	BasePoint() Point
	// ScalarFromKeyBytes clamps the given raw private key bytes and
	// reduces them into the scalar group.
	ScalarFromKeyBytes([32]byte) Scalar
	// ScalarFromWideBytes interprets a 64-byte little-endian value and
	// reduces it modulo the group order.
	ScalarFromWideBytes([64]byte) Scalar
	// DecodeToScalar decodes a canonical 32-byte scalar encoding.
	// Values greater than or equal to the group order are rejected.
	DecodeToScalar([]byte) (Scalar, error)
	// DecodeToPoint decodes a canonical compressed point encoding.
	// Encodings that are not on the curve or not canonically reduced
	// are rejected.
	DecodeToPoint([]byte) (Point, error)
	ScalarBaseMul(Scalar) Point
	ScalarMul(Scalar, Point) Point
	// DoubleBaseMul returns a*P + b*BasePoint. It may run in variable
	// time and must only be given public inputs.
	DoubleBaseMul(a Scalar, p Point, b Scalar) Point
}

type Scalar interface {
	Add(Scalar) Scalar
	Sub(Scalar) Scalar
	Negate() Scalar
	Mul(Scalar) Scalar
	// Inverse errors on a zero operand instead of dividing by zero.
	Inverse() (Scalar, error)
	Encode() []byte
	Eq(Scalar) bool
	IsZero() bool
}

type Point interface {
	Copy() Point
	Add(Point) Point
	Sub(Point) Point
	Negate() Point
	ScalarMul(Scalar) Point
	Encode() []byte
	Equals(other Point) bool
}
