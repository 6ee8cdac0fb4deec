package ed25519

import (
	"bytes"

	"filippo.io/edwards25519/field"
)

// MontgomeryToEdwards maps a Montgomery u-coordinate (an X25519 public
// key) to the compressed Edwards point with the same discrete log and
// the sign bit set to zero, via the birational map y = (u-1)/(u+1).
//
// The result is the same encoding DeriveKeyPair produces from the
// corresponding private key, and requires no private key to compute.
func MontgomeryToEdwards(u [32]byte) ([32]byte, error) {
	var out [32]byte

	uu, err := new(field.Element).SetBytes(u[:])
	if err != nil {
		return out, ErrInvalidPointEncoding
	}

	// field.Element.SetBytes masks the top bit and reduces unreduced
	// values, so a round trip detects any u >= p.
	if !bytes.Equal(u[:], uu.Bytes()) {
		return out, ErrInvalidPointEncoding
	}

	one := new(field.Element).One()
	uPlusOne := new(field.Element).Add(uu, one)
	if uPlusOne.Equal(new(field.Element)) == 1 {
		return out, ErrDegenerateInput
	}

	uMinusOne := new(field.Element).Subtract(uu, one)
	y := new(field.Element).Multiply(uMinusOne, new(field.Element).Invert(uPlusOne))

	// the canonical field encoding has the top bit clear, which is the
	// required zero sign bit.
	copy(out[:], y.Bytes())
	return out, nil
}
