// Package message seals and opens messages.
//
// Sealing encrypts the plaintext with the XOR stream cipher and signs the
// plaintext with the sender's RSA key. Opening reverses the cipher and checks
// the signature over whatever plaintext came out. Because the cipher has no
// integrity check, a corrupted ciphertext still opens; only the signature
// reveals the change.
package message
