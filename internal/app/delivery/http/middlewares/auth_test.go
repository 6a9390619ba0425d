package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hms-service/internal/app/config"
	"hms-service/internal/app/models"
	"hms-service/internal/pkg/constvars"
	"hms-service/internal/pkg/exceptions"
	"hms-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

const testJWTSecret = "test-jwt-secret"

func newTestMiddlewares(sessionService *MockSessionService) *Middlewares {
	return &Middlewares{
		Log:            zap.NewNop(),
		SessionService: sessionService,
		InternalConfig: &config.InternalConfig{
			JWT: config.JWT{Secret: testJWTSecret, ExpTimeInDays: 1},
		},
	}
}

func TestAuthenticate(t *testing.T) {
	session := &models.Session{
		SessionID: "sess1",
		UserID:    "user1",
		Role:      constvars.RolePatient,
	}
	sessionJSON, err := json.Marshal(session)
	require.NoError(t, err)

	token, err := utils.GenerateSessionJWT("sess1", testJWTSecret, 1)
	require.NoError(t, err)

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, err := utils.GetSessionFromContext(r.Context())
		require.NoError(t, err)
		assert.Equal(t, "user1", got.UserID)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("missing authorization header", func(t *testing.T) {
		sessionService := new(MockSessionService)
		middlewares := newTestMiddlewares(sessionService)

		req := httptest.NewRequest("GET", "/api/v1/doctors", nil)
		rr := httptest.NewRecorder()
		middlewares.Authenticate(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		sessionService.AssertNotCalled(t, "GetSessionData")
	})

	t.Run("garbage token", func(t *testing.T) {
		sessionService := new(MockSessionService)
		middlewares := newTestMiddlewares(sessionService)

		req := httptest.NewRequest("GET", "/api/v1/doctors", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")
		rr := httptest.NewRecorder()
		middlewares.Authenticate(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		sessionService := new(MockSessionService)
		middlewares := newTestMiddlewares(sessionService)

		forged, err := utils.GenerateSessionJWT("sess1", "other-secret", 1)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/doctors", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+forged)
		rr := httptest.NewRecorder()
		middlewares.Authenticate(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		sessionService.AssertNotCalled(t, "GetSessionData")
	})

	t.Run("valid token whose session was logged out", func(t *testing.T) {
		sessionService := new(MockSessionService)
		middlewares := newTestMiddlewares(sessionService)

		sessionService.On("GetSessionData", mock.Anything, "sess1").Return("", exceptions.ErrSessionInvalid(nil))

		req := httptest.NewRequest("GET", "/api/v1/doctors", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()
		middlewares.Authenticate(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid token with live session reaches the handler", func(t *testing.T) {
		sessionService := new(MockSessionService)
		middlewares := newTestMiddlewares(sessionService)

		sessionService.On("GetSessionData", mock.Anything, "sess1").Return(string(sessionJSON), nil)
		sessionService.On("ParseSessionData", mock.Anything, string(sessionJSON)).Return(session, nil)

		req := httptest.NewRequest("GET", "/api/v1/doctors", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()
		middlewares.Authenticate(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		sessionService.AssertExpectations(t)
	})
}

func TestRequireRoles(t *testing.T) {
	middlewares := newTestMiddlewares(new(MockSessionService))

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	withSession := func(req *http.Request, role string) *http.Request {
		session := &models.Session{UserID: "user1", Role: role}
		ctx := context.WithValue(req.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		return req.WithContext(ctx)
	}

	t.Run("matching role passes", func(t *testing.T) {
		req := withSession(httptest.NewRequest("GET", "/api/v1/patients", nil), constvars.RoleReceptionist)
		rr := httptest.NewRecorder()
		middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleReceptionist)(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("non-matching role is forbidden", func(t *testing.T) {
		req := withSession(httptest.NewRequest("GET", "/api/v1/patients", nil), constvars.RolePatient)
		rr := httptest.NewRecorder()
		middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleReceptionist)(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("no session in context is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/patients", nil)
		rr := httptest.NewRecorder()
		middlewares.RequireRoles(constvars.RoleAdmin)(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
