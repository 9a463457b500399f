package crypto

import "errors"

var (
	// ErrArithmetic is returned for a non-positive modulus or a negative exponent.
	ErrArithmetic = errors.New("arithmetic error")

	// ErrNoInverse is returned when a value and modulus are not coprime.
	ErrNoInverse = errors.New("no modular inverse")

	// ErrEmptyKey is returned when the stream cipher is given a zero-length key.
	ErrEmptyKey = errors.New("empty cipher key")

	// ErrMalformedHex is returned for odd-length input or a non-hex character.
	ErrMalformedHex = errors.New("malformed hex")

	// ErrInvalidModulus is returned when two primes cannot form a usable RSA modulus.
	ErrInvalidModulus = errors.New("invalid RSA modulus")

	// ErrUnknownKDF is returned for an unsupported key derivation mode.
	ErrUnknownKDF = errors.New("unknown key derivation")
)
