// Package exchange runs the simulated Alice/Bob Diffie-Hellman exchange and
// turns the agreed secret into stream cipher key bytes.
package exchange
