// Package keys derives RSA key pairs from user-supplied primes and signs or
// verifies messages with them.
//
// It wraps the engine in internal/crypto, forwards intermediate values to the
// configured observer and adds context to errors.
package keys
