// Package walkthrough runs the complete demo scenario.
//
// Steps
//
//  1. Derive Alice's RSA key pair from the primes p and q.
//  2. Run the Diffie-Hellman exchange between Alice and Bob.
//  3. Turn the shared secret into a stream cipher key.
//  4. Alice encrypts the message and signs the plaintext.
//  5. Bob decrypts and verifies the signature.
//  6. The ciphertext is tampered with (first hex digit forced to F, or E if it
//     already was F), decrypted again and verified again.
//
// Every value is returned in a Report; the runner itself never prints.
package walkthrough
