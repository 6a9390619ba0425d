package session

import (
	"context"

	"hms-service/internal/app/models"
)

type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session) error
	GetSessionData(ctx context.Context, sessionID string) (string, error)
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
