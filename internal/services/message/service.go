package message

import (
	"fmt"

	"minicrypt/internal/crypto"
	"minicrypt/internal/domain"
)

// Service encrypts+signs and decrypts+verifies using a KeyService for the
// RSA half.
type Service struct {
	keys domain.KeyService
	obs  domain.Observer
}

// New constructs a message Service.
func New(keys domain.KeyService, obs domain.Observer) *Service {
	return &Service{keys: keys, obs: obs}
}

// Seal encrypts plaintext under key and signs it with priv.
func (s *Service) Seal(plaintext []byte, key []byte, priv domain.RSAKey) (domain.SealedMessage, error) {
	ct, err := crypto.Encrypt(plaintext, key)
	if err != nil {
		return domain.SealedMessage{}, fmt.Errorf("encrypting: %w", err)
	}
	domain.Emit(s.obs, domain.StageMessage, "ciphertext", ct)

	sig, err := s.keys.Sign(plaintext, priv)
	if err != nil {
		return domain.SealedMessage{}, err
	}
	return domain.SealedMessage{Ciphertext: ct, Signature: sig}, nil
}

// Open decrypts sealed under key and verifies its signature with pub.
//
// A signature mismatch is reported through OpenedMessage.Valid, not as an
// error.
func (s *Service) Open(sealed domain.SealedMessage, key []byte, pub domain.RSAKey) (domain.OpenedMessage, error) {
	pt, err := crypto.Decrypt(sealed.Ciphertext, key)
	if err != nil {
		return domain.OpenedMessage{}, fmt.Errorf("decrypting: %w", err)
	}
	domain.Emit(s.obs, domain.StageMessage, "plaintext", string(pt))

	ok, err := s.keys.Verify(pt, sealed.Signature, pub)
	if err != nil {
		return domain.OpenedMessage{}, err
	}
	return domain.OpenedMessage{Plaintext: pt, Valid: ok}, nil
}

// Compile-time assertion that Service implements domain.MessageService.
var _ domain.MessageService = (*Service)(nil)
