package router

import (
	"github.com/labstack/echo/v4"

	"thriftbay/internal/adapter/api/handler"
	"thriftbay/internal/adapter/api/middleware"
)

func SetupAuthRouter(strict, general *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	// Public routes
	strict.POST("/user/register", authHandler.Register)
	strict.POST("/user/login", authHandler.Login)

	// Protected routes
	general.POST("/user/logout", authHandler.Logout, authMiddleware.Authenticate)
}
