// Package dh implements finite-field Diffie-Hellman over small int64 groups.
//
// # Overview
//
// Both parties agree on a public base g and modulus p. Each picks a private
// exponent x and publishes g^x mod p. Each then raises the peer's public value
// to its own private exponent, and because (g^a)^b == (g^b)^a mod p both
// arrive at the same shared secret.
//
// # Flows
//
// Simulate runs both sides in one process:
//  1. Initiator and responder compute their public values.
//  2. The values are "exchanged" (handed to the other side).
//  3. Each side derives the shared secret from the peer's public value.
//  4. The two secrets are compared; a mismatch is an error.
//
// # Errors
//
// ErrInvalidParams is returned for a modulus <= 1, a base <= 0 or a private
// exponent <= 0. ErrSecretMismatch signals that the two derivations differ.
//
// # Security notes
//
// The default modulus (104729) is tiny and the base is not checked to be a
// generator. Secrets can be brute-forced instantly. Teaching use only.
package dh
