package xeddsa

// Verify reports whether the signature is valid for the message under
// the given X25519 public key.
//
// Verify never returns an error: malformed lengths, invalid point
// encodings, out-of-range scalars, and genuine signature mismatches
// all collapse to false, so the caller cannot distinguish malformed
// input from a wrong signature.
func Verify(publicKey, message, signature []byte) bool {
	edPub, err := ConvertPublicKey(publicKey)
	if err != nil {
		return false
	}

	A, err := curve.DecodeToPoint(edPub[:])
	if err != nil {
		return false
	}

	sig, err := ParseSignature(signature)
	if err != nil {
		return false
	}

	h := challengeScalar(sig.R.Encode(), edPub[:], message)

	// s*B - h*A must recover the commitment R.
	check := curve.DoubleBaseMul(h.Negate(), A, sig.S)
	return check.Equals(sig.R)
}
