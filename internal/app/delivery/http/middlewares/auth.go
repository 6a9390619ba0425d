package middlewares

import (
	"context"
	"net/http"
	"strings"
	"time"

	"hms-service/internal/pkg/constvars"
	"hms-service/internal/pkg/exceptions"
	"hms-service/internal/pkg/utils"
)

// Authenticate resolves the bearer token to its Redis session and stores the
// session data in the request context. Logout invalidates the Redis entry, so
// a token that still verifies can nonetheless be rejected here.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		sessionData, err := m.SessionService.GetSessionData(ctx, sessionID)
		if err != nil {
			if err == context.DeadlineExceeded {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		session, err := m.SessionService.ParseSessionData(ctx, sessionData)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx = context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles gates a subtree to the named roles. It must sit below
// Authenticate so the session is already in the context.
func (m *Middlewares) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := utils.GetSessionFromContext(r.Context())
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}

			for _, role := range roles {
				if session.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotAllowed(nil))
		})
	}
}
