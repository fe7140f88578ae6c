package middlewares

import (
	"mamacare-service/internal/app/config"
	"mamacare-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	SessionService contracts.SessionService
}

func NewMiddlewares(logger *zap.Logger, sessionService contracts.SessionService, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		SessionService: sessionService,
	}
}
