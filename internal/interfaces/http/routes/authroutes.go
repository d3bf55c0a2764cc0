package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kitlog-inc/kitlog/internal/interfaces/http/handlers/auth"
	"github.com/kitlog-inc/kitlog/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *auth.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter // may be nil when rate limiting is disabled
}

// SetupAuthRoutes configures authentication routes under /api.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	if cfg.RateLimiter != nil {
		api.POST("/register", cfg.RateLimiter.Limit(), cfg.AuthHandler.Register)
		api.POST("/login", cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)
	} else {
		api.POST("/register", cfg.AuthHandler.Register)
		api.POST("/login", cfg.AuthHandler.Login)
	}

	api.POST("/logout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)
}
