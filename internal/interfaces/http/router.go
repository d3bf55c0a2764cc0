package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authusecases "github.com/kitlog-inc/kitlog/internal/application/auth/usecases"
	deviceusecases "github.com/kitlog-inc/kitlog/internal/application/device/usecases"
	infraauth "github.com/kitlog-inc/kitlog/internal/infrastructure/auth"
	"github.com/kitlog-inc/kitlog/internal/infrastructure/config"
	"github.com/kitlog-inc/kitlog/internal/infrastructure/ratelimit"
	"github.com/kitlog-inc/kitlog/internal/infrastructure/repository"
	authhandler "github.com/kitlog-inc/kitlog/internal/interfaces/http/handlers/auth"
	devicehandler "github.com/kitlog-inc/kitlog/internal/interfaces/http/handlers/device"
	"github.com/kitlog-inc/kitlog/internal/interfaces/http/middleware"
	"github.com/kitlog-inc/kitlog/internal/interfaces/http/routes"
	"github.com/kitlog-inc/kitlog/internal/shared/logger"
	"github.com/kitlog-inc/kitlog/internal/shared/services/sanitize"
)

// Router wires repositories, use cases, and handlers into a Gin engine.
type Router struct {
	engine         *gin.Engine
	authHandler    *authhandler.AuthHandler
	deviceHandler  *devicehandler.DeviceHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
}

// NewRouter creates a new HTTP router with all dependencies.
// redisClient may be nil when rate limiting is disabled.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(db, log)
	sessionRepo := repository.NewSessionRepository(db, log)
	deviceRepo := repository.NewDeviceRepository(db, log)

	hasher := infraauth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	sanitizer := sanitize.NewService()

	registerUC := authusecases.NewRegisterUseCase(userRepo, hasher, sanitizer, log)
	loginUC := authusecases.NewLoginUseCase(userRepo, sessionRepo, hasher, cfg.Auth.Session, log)
	logoutUC := authusecases.NewLogoutUseCase(sessionRepo, log)

	createDeviceUC := deviceusecases.NewCreateDeviceUseCase(deviceRepo, sanitizer, log)
	getDeviceUC := deviceusecases.NewGetDeviceUseCase(deviceRepo, log)
	listDevicesUC := deviceusecases.NewListDevicesUseCase(deviceRepo, log)
	updateDeviceUC := deviceusecases.NewUpdateDeviceUseCase(deviceRepo, sanitizer, log)
	deleteDeviceUC := deviceusecases.NewDeleteDeviceUseCase(deviceRepo, log)
	toggleDeviceUC := deviceusecases.NewToggleDeviceUseCase(deviceRepo, log)

	authHandler := authhandler.NewAuthHandler(registerUC, loginUC, logoutUC)
	deviceHandler := devicehandler.NewDeviceHandler(
		createDeviceUC, getDeviceUC, listDevicesUC,
		updateDeviceUC, deleteDeviceUC, toggleDeviceUC,
	)

	authMiddleware := middleware.NewAuthMiddleware(sessionRepo, log)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled && redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(
			ratelimit.NewRedisRateLimiter(redisClient),
			cfg.RateLimit.LoginLimit,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		)
	}

	return &Router{
		engine:         engine,
		authHandler:    authHandler,
		deviceHandler:  deviceHandler,
		authMiddleware: authMiddleware,
		rateLimiter:    rateLimiter,
	}
}

// SetupRoutes configures middleware and all HTTP routes.
func (r *Router) SetupRoutes(cfg *config.Config, log logger.Interface) {
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupDeviceRoutes(api, &routes.DeviceRouteConfig{
		DeviceHandler:  r.deviceHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
