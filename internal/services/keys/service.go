package keys

import (
	"fmt"

	"minicrypt/internal/crypto"
	"minicrypt/internal/domain"
)

// Service manages RSA key derivation, signing and verification.
type Service struct {
	obs domain.Observer
}

// New returns a key service reporting to obs. obs may be nil.
func New(obs domain.Observer) *Service { return &Service{obs: obs} }

// Generate derives a key pair from primes p and q.
func (s *Service) Generate(p, q domain.Integer) (domain.KeyPair, error) {
	kp, err := crypto.GenerateKeyPair(p, q, s.obs)
	if err != nil {
		return domain.KeyPair{}, fmt.Errorf("generating key pair from p=%d q=%d: %w", p, q, err)
	}
	domain.Emit(s.obs, domain.StageKeyGen, "fingerprint", crypto.Fingerprint(kp.Public))
	return kp, nil
}

// Sign signs message with priv.
func (s *Service) Sign(message []byte, priv domain.RSAKey) (domain.Signature, error) {
	domain.Emit(s.obs, domain.StageMessage, "digest", crypto.Digest(message))
	sig, err := crypto.Sign(message, priv)
	if err != nil {
		return 0, err
	}
	domain.Emit(s.obs, domain.StageMessage, "signature", sig)
	return sig, nil
}

// Verify checks sig over message against pub.
func (s *Service) Verify(message []byte, sig domain.Signature, pub domain.RSAKey) (bool, error) {
	ok, err := crypto.Verify(message, sig, pub)
	if err != nil {
		return false, err
	}
	domain.Emit(s.obs, domain.StageMessage, "signature_valid", ok)
	return ok, nil
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
