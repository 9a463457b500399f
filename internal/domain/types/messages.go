package types

// SealedMessage is what a sender hands over: ciphertext plus a signature
// over the plaintext.
type SealedMessage struct {
	Ciphertext string    `json:"ciphertext"`
	Signature  Signature `json:"signature"`
}

// OpenedMessage is the receiver's view after decrypting and verifying.
type OpenedMessage struct {
	Plaintext []byte `json:"plaintext"`
	Valid     bool   `json:"valid"`
}
