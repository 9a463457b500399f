package types

import "fmt"

// RSAKey is one half of an RSA key pair. Exponent is e for the public key
// and d for the private key.
type RSAKey struct {
	Modulus  Integer `json:"n"`
	Exponent Integer `json:"exponent"`
}

// String renders the key as "(exponent, modulus)".
func (k RSAKey) String() string { return fmt.Sprintf("(%d, %d)", k.Exponent, k.Modulus) }

// KeyPair is the result of RSA key derivation from two primes.
//
// P, Q and Phi are kept so callers can display the derivation steps; they are
// never needed to sign or verify.
type KeyPair struct {
	Public  RSAKey  `json:"public"`
	Private RSAKey  `json:"private"`
	P       Integer `json:"p"`
	Q       Integer `json:"q"`
	Phi     Integer `json:"phi"`
}
