package crypto

import (
	"fmt"
	"math"
	"math/bits"

	"minicrypt/internal/domain"
)

// PublicExponentStart is the first candidate for e. Candidates step by 2
// until one is coprime to phi(n).
const PublicExponentStart domain.Integer = 65537

// GenerateKeyPair derives an RSA key pair from two primes.
//
// n = p*q, phi = (p-1)(q-1), e is the smallest odd value >= 65537 coprime to
// phi and d = e^-1 mod phi. Each intermediate value is reported to obs in
// that order; obs may be nil.
func GenerateKeyPair(p, q domain.Integer, obs domain.Observer) (domain.KeyPair, error) {
	if err := checkPrimes(p, q); err != nil {
		return domain.KeyPair{}, err
	}
	n, ok := mulChecked(p, q)
	if !ok {
		return domain.KeyPair{}, fmt.Errorf("%w: %d * %d overflows int64", ErrInvalidModulus, p, q)
	}
	phi := (p - 1) * (q - 1)

	e := PublicExponentStart
	for GCD(e, phi) != 1 {
		e += 2
	}
	d, err := ModInverse(e, phi)
	if err != nil {
		return domain.KeyPair{}, fmt.Errorf("deriving private exponent: %w", err)
	}

	kp := domain.KeyPair{
		Public:  domain.RSAKey{Modulus: n, Exponent: e},
		Private: domain.RSAKey{Modulus: n, Exponent: d},
		P:       p,
		Q:       q,
		Phi:     phi,
	}

	domain.Emit(obs, domain.StageKeyGen, "p", p)
	domain.Emit(obs, domain.StageKeyGen, "q", q)
	domain.Emit(obs, domain.StageKeyGen, "n", n)
	domain.Emit(obs, domain.StageKeyGen, "phi", phi)
	domain.Emit(obs, domain.StageKeyGen, "public", kp.Public)
	domain.Emit(obs, domain.StageKeyGen, "private", kp.Private)
	return kp, nil
}

// Digest sums the unsigned value of every byte in message.
//
// It is order independent and collides trivially ("AB" and "BA" share a
// digest). Signatures are only as strong as this function.
func Digest(message []byte) domain.Integer {
	var sum domain.Integer
	for _, b := range message {
		sum += domain.Integer(b)
	}
	return sum
}

// Sign returns Digest(message)^d mod n.
func Sign(message []byte, priv domain.RSAKey) (domain.Signature, error) {
	s, err := ModExp(Digest(message), priv.Exponent, priv.Modulus)
	if err != nil {
		return 0, fmt.Errorf("signing: %w", err)
	}
	return domain.Signature(s), nil
}

// Verify reports whether sig^e mod n equals the digest of message reduced
// mod n.
func Verify(message []byte, sig domain.Signature, pub domain.RSAKey) (bool, error) {
	m, err := ModExp(domain.Integer(sig), pub.Exponent, pub.Modulus)
	if err != nil {
		return false, fmt.Errorf("verifying: %w", err)
	}
	return m == Digest(message)%pub.Modulus, nil
}

func checkPrimes(p, q domain.Integer) error {
	switch {
	case p <= 1 || q <= 1:
		return fmt.Errorf("%w: p=%d and q=%d must both exceed 1", ErrInvalidModulus, p, q)
	case p == q:
		return fmt.Errorf("%w: p and q must differ (both %d)", ErrInvalidModulus, p)
	case !IsPrime(p):
		return fmt.Errorf("%w: p=%d is not prime", ErrInvalidModulus, p)
	case !IsPrime(q):
		return fmt.Errorf("%w: q=%d is not prime", ErrInvalidModulus, q)
	}
	return nil
}

// mulChecked returns a*b for positive a, b and whether it fits in an int64.
func mulChecked(a, b domain.Integer) (domain.Integer, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}
	return domain.Integer(lo), true
}
