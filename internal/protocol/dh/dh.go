package dh

import (
	"errors"
	"fmt"

	"minicrypt/internal/crypto"
	"minicrypt/internal/domain"
)

const (
	// DefaultBase is the public base used when none is configured.
	DefaultBase domain.Integer = 5
	// DefaultModulus is the public modulus used when none is configured.
	DefaultModulus domain.Integer = 104729
)

var (
	ErrInvalidParams  = errors.New("invalid Diffie-Hellman parameters")
	ErrSecretMismatch = errors.New("shared secrets differ")
)

// DefaultParams returns the demo parameters (5, 104729).
func DefaultParams() domain.DHParams {
	return domain.DHParams{Base: DefaultBase, Modulus: DefaultModulus}
}

// PublicValue returns base^private mod modulus.
func PublicValue(params domain.DHParams, private domain.Integer) (domain.Integer, error) {
	if err := validate(params, private); err != nil {
		return 0, err
	}
	return crypto.ModExp(params.Base, private, params.Modulus)
}

// SharedSecret returns remotePublic^localPrivate mod modulus.
func SharedSecret(
	params domain.DHParams,
	localPrivate domain.Integer,
	remotePublic domain.Integer,
) (domain.SharedSecret, error) {
	if err := validate(params, localPrivate); err != nil {
		return 0, err
	}
	s, err := crypto.ModExp(remotePublic, localPrivate, params.Modulus)
	if err != nil {
		return 0, err
	}
	return domain.SharedSecret(s), nil
}

// Simulate runs an initiator/responder exchange in-process and returns the
// full transcript. obs receives each public step; it may be nil.
func Simulate(
	params domain.DHParams,
	initiatorPrivate domain.Integer,
	responderPrivate domain.Integer,
	obs domain.Observer,
) (domain.Exchange, error) {
	initiator, err := newParty("alice", params, initiatorPrivate)
	if err != nil {
		return domain.Exchange{}, fmt.Errorf("initiator: %w", err)
	}
	responder, err := newParty("bob", params, responderPrivate)
	if err != nil {
		return domain.Exchange{}, fmt.Errorf("responder: %w", err)
	}

	domain.Emit(obs, domain.StageExchange, "base", params.Base)
	domain.Emit(obs, domain.StageExchange, "modulus", params.Modulus)
	domain.Emit(obs, domain.StageExchange, "alice_private", initiator.Private)
	domain.Emit(obs, domain.StageExchange, "bob_private", responder.Private)
	domain.Emit(obs, domain.StageExchange, "alice_public", initiator.Public)
	domain.Emit(obs, domain.StageExchange, "bob_public", responder.Public)

	initiatorSecret, err := SharedSecret(params, initiator.Private, responder.Public)
	if err != nil {
		return domain.Exchange{}, err
	}
	responderSecret, err := SharedSecret(params, responder.Private, initiator.Public)
	if err != nil {
		return domain.Exchange{}, err
	}

	domain.Emit(obs, domain.StageExchange, "alice_shared", initiatorSecret)
	domain.Emit(obs, domain.StageExchange, "bob_shared", responderSecret)

	ex := domain.Exchange{
		Params:          params,
		Initiator:       initiator,
		Responder:       responder,
		InitiatorSecret: initiatorSecret,
		ResponderSecret: responderSecret,
	}
	if initiatorSecret != responderSecret {
		return ex, fmt.Errorf("%w: %d != %d", ErrSecretMismatch, initiatorSecret, responderSecret)
	}
	return ex, nil
}

func newParty(name string, params domain.DHParams, private domain.Integer) (domain.Party, error) {
	pub, err := PublicValue(params, private)
	if err != nil {
		return domain.Party{}, err
	}
	return domain.Party{Name: name, Private: private, Public: pub}, nil
}

func validate(params domain.DHParams, private domain.Integer) error {
	switch {
	case params.Modulus <= 1:
		return fmt.Errorf("%w: modulus %d must exceed 1", ErrInvalidParams, params.Modulus)
	case params.Base <= 0:
		return fmt.Errorf("%w: base %d must be positive", ErrInvalidParams, params.Base)
	case private <= 0:
		return fmt.Errorf("%w: private exponent %d must be positive", ErrInvalidParams, private)
	}
	return nil
}
