package types

import "strconv"

// Integer is the signed width all modular arithmetic runs on.
type Integer = int64

// Signature is an RSA signature over a message digest.
type Signature Integer

// String returns the decimal form of the signature.
func (s Signature) String() string { return strconv.FormatInt(int64(s), 10) }

// SharedSecret is a Diffie-Hellman shared value.
type SharedSecret Integer

// String returns the decimal form of the secret. This is also the text the
// symmetric key is derived from.
func (s SharedSecret) String() string { return strconv.FormatInt(int64(s), 10) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
