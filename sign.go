package xeddsa

import (
	"crypto/rand"
	"fmt"
)

// Sign signs the message with the given X25519 private key, sourcing
// nonce randomness from crypto/rand. The signature is 64 bytes, the
// commitment R followed by the response scalar s.
func Sign(privateKey, message []byte) ([]byte, error) {
	var random [RandomSize]byte
	_, err := rand.Read(random[:])
	if err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}

	return SignWithRandom(privateKey, message, random[:])
}

// SignWithRandom signs the message with the given X25519 private key
// and caller-supplied randomness, as a pure function of its inputs.
//
// The random material must be exactly 64 bytes and must never be
// reused across signing operations, even over the same message;
// nonce reuse with the same key breaks unforgeability.
func SignWithRandom(privateKey, message, random []byte) ([]byte, error) {
	if len(random) != RandomSize {
		return nil, ErrInvalidRandomLength
	}

	kp, err := DeriveKeyPair(privateKey)
	if err != nil {
		return nil, err
	}

	r := nonceScalar(kp.PrivateScalar.Encode(), message, random)
	R := curve.ScalarBaseMul(r).Encode()

	h := challengeScalar(R, kp.PublicKey[:], message)
	s := r.Add(h.Mul(kp.PrivateScalar))

	sig := make([]byte, 0, SignatureSize)
	sig = append(sig, R...)
	sig = append(sig, s.Encode()...)
	return sig, nil
}
