// Package observe provides domain.Observer implementations.
//
// Engine functions never print. They report intermediate values (primes,
// modulus, exponents, public values, shared secrets) to an optional observer,
// and this package decides where those go: a zap logger, an in-memory
// recording, several of those at once, or nowhere.
package observe
