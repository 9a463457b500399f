package exchange

import (
	"fmt"

	"minicrypt/internal/crypto"
	"minicrypt/internal/domain"
	"minicrypt/internal/protocol/dh"
)

// Service performs Diffie-Hellman exchanges and key derivation.
//
// Both parties live in this process; nothing is sent over a network. The
// transcript returned by Run holds each side's public value and secret so
// callers can show that they agree.
type Service struct {
	kdf crypto.KeyDerivation
	obs domain.Observer
}

// New returns an exchange service deriving keys with kdf and reporting to obs.
func New(kdf crypto.KeyDerivation, obs domain.Observer) *Service {
	return &Service{kdf: kdf, obs: obs}
}

// Run simulates the exchange between an initiator and a responder.
func (s *Service) Run(
	params domain.DHParams,
	initiatorPrivate domain.Integer,
	responderPrivate domain.Integer,
) (domain.Exchange, error) {
	ex, err := dh.Simulate(params, initiatorPrivate, responderPrivate, s.obs)
	if err != nil {
		return domain.Exchange{}, fmt.Errorf("diffie-hellman over (%d, %d): %w", params.Base, params.Modulus, err)
	}
	return ex, nil
}

// SymmetricKey derives the stream cipher key from secret.
func (s *Service) SymmetricKey(secret domain.SharedSecret) ([]byte, error) {
	key, err := crypto.DeriveKey(secret, s.kdf)
	if err != nil {
		return nil, err
	}
	domain.Emit(s.obs, domain.StageExchange, "symmetric_key", crypto.HexEncode(key))
	return key, nil
}

// Compile-time assertion that Service implements domain.ExchangeService.
var _ domain.ExchangeService = (*Service)(nil)
