package middlewares

import (
	"hms-service/internal/app/config"
	"hms-service/internal/app/services/core/session"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService session.SessionService
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, sessionService session.SessionService, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		SessionService: sessionService,
		InternalConfig: internalConfig,
	}
}
