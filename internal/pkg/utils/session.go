package utils

import (
	"context"

	"hms-service/internal/app/models"
	"hms-service/internal/pkg/constvars"
	"hms-service/internal/pkg/exceptions"
)

// GetSessionFromContext returns the session the Authenticate middleware stored
// on the request context.
func GetSessionFromContext(ctx context.Context) (*models.Session, error) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok || session == nil {
		return nil, exceptions.ErrMissingSessionData(nil)
	}
	return session, nil
}
