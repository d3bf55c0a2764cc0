package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kitlog-inc/kitlog/internal/domain/user"
	"github.com/kitlog-inc/kitlog/internal/shared/constants"
	"github.com/kitlog-inc/kitlog/internal/shared/errors"
	"github.com/kitlog-inc/kitlog/internal/shared/logger"
	"github.com/kitlog-inc/kitlog/internal/shared/utils"
)

type AuthMiddleware struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewAuthMiddleware(sessionRepo user.SessionRepository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// RequireAuth resolves the bearer token to a live session. Missing, unknown
// and expired tokens all produce the same 401 response.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			m.reject(c)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			m.reject(c)
			return
		}

		session, err := m.sessionRepo.GetByTokenHash(user.HashToken(parts[1]))
		if err != nil {
			m.logger.Errorw("failed to look up session", "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
			c.Abort()
			return
		}

		if session == nil || session.IsExpired() {
			m.reject(c)
			return
		}

		// Best effort; a failed activity update must not reject the request
		session.UpdateActivity()
		if err := m.sessionRepo.Update(session); err != nil {
			m.logger.Warnw("failed to update session activity", "error", err)
		}

		c.Set(constants.ContextKeyUserID, session.UserID)
		c.Set(constants.ContextKeySessionID, session.ID)

		c.Next()
	}
}

// reject answers every missing, malformed, unknown, or expired token with
// the same 401 body so probes cannot tell the cases apart.
func (m *AuthMiddleware) reject(c *gin.Context) {
	err := errors.NewTokenInvalidError()
	if errors.ShouldLogAuthError(err) {
		m.logger.Warnw("rejected request token",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP())
	}
	utils.ErrorResponseWithError(c, err)
	c.Abort()
}
