package session

import (
	"context"
	"time"

	"hms-service/internal/app/models"
	"hms-service/internal/app/services/shared/redis"
	"hms-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository redis.RedisRepository
	sessionTTL      time.Duration
}

// NewSessionService builds the Redis-backed session store. The TTL matches the
// bearer token expiry so a session never outlives its token.
func NewSessionService(redisRepository redis.RedisRepository, jwtExpiryTimeInDays int) SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		sessionTTL:      time.Duration(jwtExpiryTimeInDays) * 24 * time.Hour,
	}
}

func (svc *sessionService) CreateSession(ctx context.Context, session *models.Session) error {
	return svc.RedisRepository.Set(ctx, session.SessionID, session, svc.sessionTTL)
}

func (svc *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if sessionData == "" {
		return "", exceptions.ErrSessionInvalid(nil)
	}
	return sessionData, nil
}

func (svc *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, sessionID)
}
