package router

import (
	"github.com/labstack/echo/v4"

	"thriftbay/internal/adapter/api/handler"
	"thriftbay/internal/adapter/api/middleware"
)

func SetupUserRouter(g *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := g.Group("/user")
	users.GET("/me", userHandler.GetMe, authMiddleware.Authenticate)
	users.DELETE("/me", userHandler.DeleteAccount, authMiddleware.Authenticate)
	users.PUT("/profile", userHandler.UpdateProfile, authMiddleware.Authenticate)
	users.POST("/upload-avatar", userHandler.UploadAvatar, authMiddleware.Authenticate)
}
