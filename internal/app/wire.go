package app

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"minicrypt/internal/crypto"
	"minicrypt/internal/domain"
	"minicrypt/internal/observe"
	"minicrypt/internal/services/exchange"
	"minicrypt/internal/services/keys"
	"minicrypt/internal/services/message"
	"minicrypt/internal/services/walkthrough"
)

// New constructs the dependency graph from cfg. Intermediate values are
// logged through log at info level unless quiet is set, in which case the
// engine runs silently.
func New(cfg Config, log *zap.Logger, quiet bool) *App {
	if log == nil {
		log = zap.NewNop()
	}

	var obs domain.Observer = observe.Nop{}
	if !quiet {
		obs = observe.NewZap(log, zapcore.InfoLevel)
	}

	keySvc := keys.New(obs)
	exchangeSvc := exchange.New(crypto.KeyDerivation(cfg.KDF), obs)
	messageSvc := message.New(keySvc, obs)
	runner := walkthrough.New(keySvc, exchangeSvc, messageSvc, cfg.MinPrime, obs)

	return &App{
		Config:      cfg,
		Log:         log,
		Keys:        keySvc,
		Exchange:    exchangeSvc,
		Messages:    messageSvc,
		Walkthrough: runner,
	}
}
