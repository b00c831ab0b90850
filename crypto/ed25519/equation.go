package ed25519

import (
	"crypto/subtle"
	"fmt"
)

// CheckSignatureEquation reports whether s*B - k*A equals the point encoded
// by r, where A is a P3 public point, s the 32-byte response scalar and k
// the 32-byte challenge already reduced mod L. s must be canonical (below L);
// a non-canonical s reports false.
//
// Computing k from the message is left to the caller.
func CheckSignatureEquation(A *GroupElement, r, s, k []byte) (bool, error) {
	if len(r) != 32 {
		return false, fmt.Errorf("%w: R needs 32 bytes, got %d", ErrInvalidLength, len(r))
	}
	if len(s) != 32 {
		return false, fmt.Errorf("%w: S needs 32 bytes, got %d", ErrInvalidLength, len(s))
	}
	if !IsCanonicalScalar(s) {
		return false, nil
	}
	rCheck, err := BasePoint().DoubleScalarMultiplyVariableTime(A, k, s)
	if err != nil {
		return false, err
	}
	enc, err := rCheck.Encode()
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(enc[:], r) == 1, nil
}
