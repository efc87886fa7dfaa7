package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/temitayo1239/student-information-portal-main/internal/response"
)

// SessionChecker reports whether a session still holds state.
type SessionChecker interface {
	SessionExists(ctx context.Context, sessionID string) (bool, error)
}

// RequireActiveSession rejects tokens whose session was logged out or has
// expired. A signed token alone is not enough once its state is gone.
func RequireActiveSession(checker SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		ok, err := checker.SessionExists(c.Request.Context(), claims.SessionID())
		if err != nil {
			_ = c.Error(err)
			response.AbortFail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
		if !ok {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrSessionInvalidated)
			return
		}

		c.Next()
	}
}
