package xeddsa

import (
	"encoding/hex"
	"fmt"
)

// Signature is a parsed signature: the nonce commitment R and the
// response scalar s.
type Signature struct {
	R Point
	S Scalar
}

// ParseSignature decodes and validates a 64-byte signature encoding.
// The R component must decode to a curve point from a canonical
// encoding, and the s component must be below the group order.
func ParseSignature(in []byte) (*Signature, error) {
	if len(in) != SignatureSize {
		return nil, ErrInvalidSignatureLength
	}

	r, err := curve.DecodeToPoint(in[:PublicKeySize])
	if err != nil {
		return nil, fmt.Errorf("failed to decode R component: %w", err)
	}

	s, err := curve.DecodeToScalar(in[PublicKeySize:])
	if err != nil {
		return nil, fmt.Errorf("failed to decode s component: %w", err)
	}

	return &Signature{
		R: r,
		S: s,
	}, nil
}

// ParseSignatureHex decodes a hex-encoded signature as transmitted to
// the coordination server.
func ParseSignatureHex(in string) (*Signature, error) {
	b, err := hex.DecodeString(in)
	if err != nil {
		return nil, fmt.Errorf("failed to decode hex: %w", err)
	}

	return ParseSignature(b)
}

// Encode returns the 64-byte wire encoding, R followed by s.
func (sig *Signature) Encode() []byte {
	b := make([]byte, 0, SignatureSize)
	b = append(b, sig.R.Encode()...)
	b = append(b, sig.S.Encode()...)
	return b
}

// Hex returns the hex-encoded wire encoding.
func (sig *Signature) Hex() string {
	return hex.EncodeToString(sig.Encode())
}
