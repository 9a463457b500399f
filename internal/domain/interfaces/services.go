package interfaces

import (
	domaintypes "minicrypt/internal/domain/types"
)

// KeyService derives RSA key pairs and signs or verifies with them.
type KeyService interface {
	Generate(p, q domaintypes.Integer) (domaintypes.KeyPair, error)
	Sign(message []byte, priv domaintypes.RSAKey) (domaintypes.Signature, error)
	Verify(message []byte, sig domaintypes.Signature, pub domaintypes.RSAKey) (bool, error)
}

// ExchangeService runs a simulated Diffie-Hellman exchange.
type ExchangeService interface {
	Run(
		params domaintypes.DHParams,
		initiatorPrivate domaintypes.Integer,
		responderPrivate domaintypes.Integer,
	) (domaintypes.Exchange, error)
	SymmetricKey(secret domaintypes.SharedSecret) ([]byte, error)
}

// MessageService encrypts and signs, then decrypts and verifies.
type MessageService interface {
	Seal(
		plaintext []byte,
		key []byte,
		priv domaintypes.RSAKey,
	) (domaintypes.SealedMessage, error)
	Open(
		sealed domaintypes.SealedMessage,
		key []byte,
		pub domaintypes.RSAKey,
	) (domaintypes.OpenedMessage, error)
}
