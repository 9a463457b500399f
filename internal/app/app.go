package app

import (
	"go.uber.org/zap"

	"minicrypt/internal/domain"
	"minicrypt/internal/services/walkthrough"
)

// App bundles the services the CLI commands use.
type App struct {
	Config      Config
	Log         *zap.Logger
	Keys        domain.KeyService
	Exchange    domain.ExchangeService
	Messages    domain.MessageService
	Walkthrough *walkthrough.Runner
}
