package router

import (
	"phygital/internal/phygital/handler"
	"phygital/internal/phygital/permission"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterRoutes(e *echo.Echo, h *handler.Handler, guard *handler.PermissionGuard) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID, handler.HeaderUserID},
	}))

	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")
	v1.Use(handler.RequestIDMiddleware)

	// Permission model; readable by anyone
	v1.GET("/roles", h.GetRoles)
	v1.GET("/permissions", h.GetPermissions)
	v1.POST("/permissions/check", h.PostPermissionsCheck)
	v1.GET("/permissions/me", h.GetPermissionsMe)

	chains := v1.Group("/chains")
	view := guard.RequirePermission(permission.PermViewBlockchain)
	manage := guard.RequirePermission(permission.PermManageBlockchain)

	chains.GET("", h.GetChains, view)
	chains.GET("/:chain", h.GetChain, view)
	chains.GET("/:chain/block-number", h.GetBlockNumber, view)
	chains.GET("/:chain/balance/:address", h.GetBalance, view)
	chains.GET("/:chain/status", h.GetChainStatus, view)
	chains.GET("/:chain/status/history", h.GetChainStatusHistory, view)
	chains.POST("/:chain/transactions", h.PostTransaction, manage)
}
