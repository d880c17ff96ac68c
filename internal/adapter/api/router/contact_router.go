package router

import (
	"github.com/labstack/echo/v4"

	"thriftbay/internal/adapter/api/handler"
)

func SetupContactRouter(g *echo.Group) {
	contactHandler := handler.GetContactHandler()

	g.POST("/contact", contactHandler.Submit)
}
