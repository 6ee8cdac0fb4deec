package xeddsa

import (
	"crypto/sha512"
)

// noncePrefix is 2^256 - 2 encoded little-endian, the hash_1 prefix
// from the XEdDSA definition. It is not a valid point or scalar
// encoding, so prefixed hashes can never collide with challenge hashes
// over the same inputs.
var noncePrefix = [32]byte{
	0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// nonceScalar derives the nonce scalar r from the private scalar, the
// message, and 64 bytes of fresh randomness.
func nonceScalar(inputs ...[]byte) Scalar {
	h := sha512.New()
	h.Write(noncePrefix[:])
	for _, in := range inputs {
		h.Write(in)
	}

	var wide [64]byte
	copy(wide[:], h.Sum(nil))
	return curve.ScalarFromWideBytes(wide)
}

// challengeScalar derives the challenge scalar h from the encoded
// commitment R, the Edwards public key, and the message. The signer
// and verifier must compute it identically.
func challengeScalar(inputs ...[]byte) Scalar {
	h := sha512.New()
	for _, in := range inputs {
		h.Write(in)
	}

	var wide [64]byte
	copy(wide[:], h.Sum(nil))
	return curve.ScalarFromWideBytes(wide)
}
