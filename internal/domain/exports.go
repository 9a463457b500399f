package domain

import (
	interfaces "minicrypt/internal/domain/interfaces"
	types "minicrypt/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Integer       = types.Integer
	Signature     = types.Signature
	SharedSecret  = types.SharedSecret
	Fingerprint   = types.Fingerprint
	RSAKey        = types.RSAKey
	KeyPair       = types.KeyPair
	DHParams      = types.DHParams
	Party         = types.Party
	Exchange      = types.Exchange
	SealedMessage = types.SealedMessage
	OpenedMessage = types.OpenedMessage
	Event         = types.Event
)

// Stage names re-exported for narration.
const (
	StageKeyGen   = types.StageKeyGen
	StageExchange = types.StageExchange
	StageMessage  = types.StageMessage
	StageTamper   = types.StageTamper
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyService      = interfaces.KeyService
	ExchangeService = interfaces.ExchangeService
	MessageService  = interfaces.MessageService
	Observer        = interfaces.Observer
)

// Emit forwards ev to obs. A nil observer is silent.
func Emit(obs Observer, stage, name string, value any) {
	if obs == nil {
		return
	}
	obs.Observe(Event{Stage: stage, Name: name, Value: value})
}
