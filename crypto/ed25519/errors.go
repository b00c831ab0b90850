// Package ed25519 implements the arithmetic core of the Ed25519 signature
// scheme: the field GF(2^255 - 19) in ten 25.5-bit limbs, the twisted Edwards
// group in six coordinate representations with fixed-base and double-scalar
// multiplication, and reduction of scalars modulo the group order L.
//
// Signing and verification protocols, including their hashing steps, are
// built on top of this package by callers.
package ed25519

import "errors"

// Caller misuse is reported through three sentinel errors. Detail is attached
// with fmt.Errorf("%w: ...") so callers match with errors.Is.
var (
	// ErrInvalidLength is returned when a constructor or decoder is given a
	// buffer of the wrong size.
	ErrInvalidLength = errors.New("ed25519: invalid length")

	// ErrUnsupportedRepresentation is returned when an operation is invoked
	// on a group element (or with an operand) in a representation the
	// operation does not accept.
	ErrUnsupportedRepresentation = errors.New("ed25519: unsupported representation")

	// ErrInvalidArgument is returned for a representation conversion with no
	// defined mapping, and for point encodings that do not decode to a curve
	// point.
	ErrInvalidArgument = errors.New("ed25519: invalid argument")
)
