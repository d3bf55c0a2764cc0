package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kitlog-inc/kitlog/internal/interfaces/http/handlers/device"
	"github.com/kitlog-inc/kitlog/internal/interfaces/http/middleware"
)

// DeviceRouteConfig holds dependencies for device inventory routes.
type DeviceRouteConfig struct {
	DeviceHandler  *device.DeviceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupDeviceRoutes configures device inventory routes under /api.
// Every route requires an authenticated session.
func SetupDeviceRoutes(api *gin.RouterGroup, cfg *DeviceRouteConfig) {
	group := api.Group("/devices")
	group.Use(cfg.AuthMiddleware.RequireAuth())
	{
		group.POST("", cfg.DeviceHandler.CreateDevice)
		group.GET("", cfg.DeviceHandler.ListDevices)
		group.GET("/:id", cfg.DeviceHandler.GetDevice)
		group.PUT("/:id", cfg.DeviceHandler.UpdateDevice)
		group.DELETE("/:id", cfg.DeviceHandler.DeleteDevice)
		group.PATCH("/:id/use", cfg.DeviceHandler.ToggleDevice)
	}
}
