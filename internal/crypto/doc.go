// Package crypto is the numeric engine behind minicrypt.
//
// Contents
//
//   - Modular arithmetic over int64 (ModExp, GCD, ModInverse, IsPrime)
//   - Uppercase hex framing (HexEncode, HexDecode)
//   - A repeating-key XOR stream cipher (Encrypt, Decrypt)
//   - Textbook RSA over two small primes (GenerateKeyPair, Digest, Sign, Verify)
//   - Symmetric key derivation from a Diffie-Hellman secret (DeriveKey)
//   - Short public-key fingerprints for display (Fingerprint)
//
// # Notes
//
// None of this is secure. Keys are a few digits long, the signature digest is
// a plain byte sum and the cipher has no integrity protection. The package
// exists to show the arithmetic, so those weaknesses are part of its contract:
// two messages with the same byte sum share a signature, and any ciphertext
// decrypts to some plaintext.
//
// Multiplications go through a 128-bit intermediate, so every function is
// exact for moduli below 2^63. Apart from observer callbacks every function is
// pure and safe for concurrent use.
package crypto
