// Package xeddsa implements the XEdDSA signature scheme over
// curve25519: Ed25519-style signatures produced and verified with an
// X25519 (Montgomery) keypair, so one keypair serves both key exchange
// and authentication.
package xeddsa

import (
	"errors"

	"github.com/athanorlabs/go-xeddsa/ed25519"
	"github.com/athanorlabs/go-xeddsa/types"

	"golang.org/x/crypto/curve25519"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

const (
	// PrivateKeySize is the size of an X25519 private key in bytes.
	PrivateKeySize = 32
	// PublicKeySize is the size of a compressed public key in bytes,
	// in both the Montgomery and Edwards representations.
	PublicKeySize = 32
	// SignatureSize is the size of a signature in bytes.
	SignatureSize = 64
	// RandomSize is the amount of fresh randomness consumed by a
	// single signing operation, in bytes.
	RandomSize = 64
)

var (
	ErrInvalidKeyLength       = errors.New("private key must be 32 bytes")
	ErrInvalidRandomLength    = errors.New("random material must be 64 bytes")
	ErrInvalidSignatureLength = errors.New("signature must be 64 bytes")

	// re-exported from the curve backend.
	ErrInvalidPointEncoding = ed25519.ErrInvalidPointEncoding
	ErrPointNotOnCurve      = ed25519.ErrPointNotOnCurve
	ErrInvalidScalarRange   = ed25519.ErrInvalidScalarRange
	ErrDegenerateInput      = ed25519.ErrDegenerateInput
)

var curve = ed25519.NewCurve()

// KeyPair is a twist-compatible Edwards signing keypair derived from an
// X25519 private key. The public key always has its sign bit set to
// zero; PrivateScalar is negated during derivation as needed to make
// that hold.
type KeyPair struct {
	PublicKey     [PublicKeySize]byte
	PrivateScalar Scalar
}

// DeriveKeyPair converts an X25519 private key into an Edwards signing
// keypair. The derivation is deterministic; no state is retained
// between calls.
func DeriveKeyPair(privateKey []byte) (*KeyPair, error) {
	if len(privateKey) != PrivateKeySize {
		return nil, ErrInvalidKeyLength
	}

	var kb [PrivateKeySize]byte
	copy(kb[:], privateKey)

	k := curve.ScalarFromKeyBytes(kb)
	a := k

	// negating the scalar negates the point's x-coordinate, flipping
	// the sign bit of the encoding.
	eb := curve.ScalarBaseMul(k).Encode()
	if eb[31]&0x80 != 0 {
		a = k.Negate()
	}

	kp := &KeyPair{
		PrivateScalar: a,
	}
	copy(kp.PublicKey[:], curve.ScalarBaseMul(a).Encode())
	return kp, nil
}

// ConvertPublicKey maps an X25519 public key to the compressed Edwards
// public key that DeriveKeyPair would produce from the corresponding
// private key. It requires no private key.
func ConvertPublicKey(publicKey []byte) ([PublicKeySize]byte, error) {
	var u [PublicKeySize]byte
	if len(publicKey) != PublicKeySize {
		return u, ErrInvalidPointEncoding
	}

	copy(u[:], publicKey)
	return ed25519.MontgomeryToEdwards(u)
}

// PublicKeyFromPrivate returns the X25519 public key for the given
// private key. This is the key a participant publishes alongside its
// signatures.
func PublicKeyFromPrivate(privateKey []byte) ([PublicKeySize]byte, error) {
	var pub [PublicKeySize]byte
	if len(privateKey) != PrivateKeySize {
		return pub, ErrInvalidKeyLength
	}

	b, err := curve25519.X25519(privateKey, curve25519.Basepoint)
	if err != nil {
		return pub, err
	}

	copy(pub[:], b)
	return pub, nil
}
