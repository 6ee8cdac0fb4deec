package ed25519

import (
	"bytes"

	"github.com/athanorlabs/go-xeddsa/types"

	"filippo.io/edwards25519"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (c *CurveImpl) BasePoint() Point {
	return &PointImpl{
		inner: edwards25519.NewGeneratorPoint(),
	}
}

func (c *CurveImpl) ScalarFromKeyBytes(b [32]byte) Scalar {
	s, err := new(edwards25519.Scalar).SetBytesWithClamping(b[:])
	if err != nil {
		// only fails on wrong input length
		panic(err)
	}

	return &ScalarImpl{
		inner: s,
	}
}

func (c *CurveImpl) ScalarFromWideBytes(b [64]byte) Scalar {
	s, err := new(edwards25519.Scalar).SetUniformBytes(b[:])
	if err != nil {
		panic(err)
	}

	return &ScalarImpl{
		inner: s,
	}
}

func (c *CurveImpl) DecodeToScalar(b []byte) (Scalar, error) {
	if len(b) != 32 {
		return nil, ErrInvalidScalarRange
	}

	s, err := new(edwards25519.Scalar).SetCanonicalBytes(b)
	if err != nil {
		return nil, ErrInvalidScalarRange
	}

	return &ScalarImpl{
		inner: s,
	}, nil
}

func (c *CurveImpl) DecodeToPoint(b []byte) (Point, error) {
	if len(b) != 32 {
		return nil, ErrInvalidPointEncoding
	}

	p, err := new(edwards25519.Point).SetBytes(b)
	if err != nil {
		return nil, ErrPointNotOnCurve
	}

	// SetBytes accepts some non-canonical encodings: unreduced field
	// elements, and x=0 with the sign bit set. Re-encoding yields the
	// canonical form, so any mismatch means the input was one of those.
	if !bytes.Equal(b, p.Bytes()) {
		return nil, ErrInvalidPointEncoding
	}

	return &PointImpl{
		inner: p,
	}, nil
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).ScalarBaseMult(ss.inner),
	}
}

func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).ScalarMult(ss.inner, pp.inner),
	}
}

func (c *CurveImpl) DoubleBaseMul(a Scalar, p Point, b Scalar) Point {
	aa, ok := a.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	bb, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).VarTimeDoubleScalarBaseMult(aa.inner, pp.inner, bb.inner),
	}
}

type ScalarImpl struct {
	inner *edwards25519.Scalar
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Add(s.inner, ss.inner),
	}
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Subtract(s.inner, ss.inner),
	}
}

func (s *ScalarImpl) Negate() Scalar {
	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Negate(s.inner),
	}
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Multiply(s.inner, ss.inner),
	}
}

func (s *ScalarImpl) Inverse() (Scalar, error) {
	if s.IsZero() {
		return nil, ErrDegenerateInput
	}

	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Invert(s.inner),
	}, nil
}

func (s *ScalarImpl) Encode() []byte {
	return s.inner.Bytes()
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}
	return s.inner.Equal(ss.inner) == 1
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.Equal(new(edwards25519.Scalar)) == 1
}

type PointImpl struct {
	inner *edwards25519.Point
}

func (p *PointImpl) Copy() Point {
	return &PointImpl{
		inner: new(edwards25519.Point).Set(p.inner),
	}
}

func (p *PointImpl) Add(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).Add(p.inner, pp.inner),
	}
}

func (p *PointImpl) Sub(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).Subtract(p.inner, pp.inner),
	}
}

func (p *PointImpl) Negate() Point {
	return &PointImpl{
		inner: new(edwards25519.Point).Negate(p.inner),
	}
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).ScalarMult(ss.inner, p.inner),
	}
}

func (p *PointImpl) Encode() []byte {
	return p.inner.Bytes()
}

func (p *PointImpl) Equals(other Point) bool {
	pp, ok := other.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return p.inner.Equal(pp.inner) == 1
}
