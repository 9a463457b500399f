package walkthrough

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"minicrypt/internal/crypto"
	"minicrypt/internal/domain"
	"minicrypt/internal/util/memzero"
)

var (
	// ErrInvalidInput is returned when the scenario input fails validation.
	ErrInvalidInput = errors.New("invalid walkthrough input")

	// ErrPrimeTooSmall is returned when p or q does not exceed the minimum.
	ErrPrimeTooSmall = errors.New("prime too small")
)

// Input is everything the scenario needs from the user or config.
type Input struct {
	Message      string          `validate:"required"`
	P            domain.Integer  `validate:"gt=1"`
	Q            domain.Integer  `validate:"gt=1,nefield=P"`
	Params       domain.DHParams `validate:"-"`
	AlicePrivate domain.Integer  `validate:"gt=0"`
	BobPrivate   domain.Integer  `validate:"gt=0"`
}

// Tampered records the corrupted-ciphertext half of the scenario.
type Tampered struct {
	Ciphertext string               `json:"ciphertext"`
	Opened     domain.OpenedMessage `json:"opened"`
}

// Report is the structured result of one run.
type Report struct {
	Keys     domain.KeyPair       `json:"keys"`
	Exchange domain.Exchange      `json:"exchange"`
	KeyHex   string               `json:"symmetric_key"`
	Sealed   domain.SealedMessage `json:"sealed"`
	Opened   domain.OpenedMessage `json:"opened"`
	Tampered Tampered             `json:"tampered"`
}

// Runner wires the key, exchange and message services into the scenario.
type Runner struct {
	keys     domain.KeyService
	exchange domain.ExchangeService
	messages domain.MessageService
	minPrime domain.Integer
	obs      domain.Observer
	validate *validator.Validate
}

// New returns a Runner that requires both primes to exceed minPrime.
func New(
	keys domain.KeyService,
	exchange domain.ExchangeService,
	messages domain.MessageService,
	minPrime domain.Integer,
	obs domain.Observer,
) *Runner {
	return &Runner{
		keys:     keys,
		exchange: exchange,
		messages: messages,
		minPrime: minPrime,
		obs:      obs,
		validate: validator.New(),
	}
}

// CheckPrimes applies the minimum-size rule to p and q. Primality itself is
// checked during key generation.
func (r *Runner) CheckPrimes(p, q domain.Integer) error {
	if p <= r.minPrime || q <= r.minPrime {
		return fmt.Errorf("%w: both p and q must be > %d (got %d, %d)", ErrPrimeTooSmall, r.minPrime, p, q)
	}
	return nil
}

// Run executes the scenario described in the package doc.
func (r *Runner) Run(in Input) (Report, error) {
	if err := r.validate.Struct(in); err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := r.CheckPrimes(in.P, in.Q); err != nil {
		return Report{}, err
	}

	kp, err := r.keys.Generate(in.P, in.Q)
	if err != nil {
		return Report{}, err
	}

	ex, err := r.exchange.Run(in.Params, in.AlicePrivate, in.BobPrivate)
	if err != nil {
		return Report{}, err
	}
	key, err := r.exchange.SymmetricKey(ex.Secret())
	if err != nil {
		return Report{}, err
	}
	defer memzero.Zero(key)

	msg := []byte(in.Message)
	sealed, err := r.messages.Seal(msg, key, kp.Private)
	if err != nil {
		return Report{}, err
	}
	opened, err := r.messages.Open(sealed, key, kp.Public)
	if err != nil {
		return Report{}, err
	}

	corrupt := domain.SealedMessage{Ciphertext: Tamper(sealed.Ciphertext), Signature: sealed.Signature}
	domain.Emit(r.obs, domain.StageTamper, "ciphertext", corrupt.Ciphertext)
	tampered, err := r.messages.Open(corrupt, key, kp.Public)
	if err != nil {
		return Report{}, fmt.Errorf("opening tampered message: %w", err)
	}

	return Report{
		Keys:     kp,
		Exchange: ex,
		KeyHex:   crypto.HexEncode(key),
		Sealed:   sealed,
		Opened:   opened,
		Tampered: Tampered{Ciphertext: corrupt.Ciphertext, Opened: tampered},
	}, nil
}

// Tamper corrupts a hex ciphertext by forcing its first digit to F, or to E
// when it already is F. Empty input is returned unchanged.
func Tamper(ciphertextHex string) string {
	if ciphertextHex == "" {
		return ciphertextHex
	}
	first := "F"
	if ciphertextHex[0] == 'F' {
		first = "E"
	}
	return first + ciphertextHex[1:]
}
