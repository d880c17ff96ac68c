package router

import (
	"github.com/labstack/echo/v4"

	"thriftbay/internal/adapter/api/handler"
	"thriftbay/internal/adapter/api/middleware"
)

func SetupOrderRouter(g *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	orderHandler := handler.GetOrderHandler()

	orders := g.Group("/user/orders", authMiddleware.Authenticate)
	orders.POST("/buy/:id", orderHandler.Buy)
	orders.GET("/my", orderHandler.ListMine)
	orders.GET("/seller", orderHandler.ListForSeller)
}
