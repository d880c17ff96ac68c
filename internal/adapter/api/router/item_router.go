package router

import (
	"github.com/labstack/echo/v4"

	"thriftbay/internal/adapter/api/handler"
	"thriftbay/internal/adapter/api/middleware"
	"thriftbay/internal/domain/entity"
)

func SetupItemRouter(g *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	itemHandler := handler.GetItemHandler()
	authenticate := authMiddleware.Authenticate

	// Authenticated feed
	g.GET("/user/getallitems", itemHandler.ListPublic, authenticate)
	g.GET("/user/fetchitemdetails/:id", itemHandler.GetDetails, authenticate)

	seller := g.Group("/user/seller")

	// Public routes
	seller.GET("/allpublicitems", itemHandler.ListPublicForSellers)
	seller.GET("/item/:id", itemHandler.GetDetails)
	seller.GET("/:id/items", itemHandler.ListBySeller)

	// Protected routes
	seller.POST("/postingitem", itemHandler.CreateItem, authenticate, middleware.RequireType(entity.UserTypeSeller))
	seller.GET("/getallitems", itemHandler.ListOwn, authenticate)
	seller.PUT("/:id", itemHandler.UpdateItem, authenticate)
	seller.DELETE("/:id", itemHandler.DeleteItem, authenticate)
	seller.POST("/items/:id/rate", itemHandler.SetRating, authenticate)
	seller.GET("/items/:id/my-rating", itemHandler.GetMyRating, authenticate)
}
