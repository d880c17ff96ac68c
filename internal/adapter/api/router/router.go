package router

import (
	"github.com/labstack/echo/v4"

	"thriftbay/internal/adapter/api/middleware"
)

// Setup mounts every resource under prefix (empty by default). Credential
// and anonymous write endpoints share the strict limiter, the rest the
// general one.
func Setup(e *echo.Echo, prefix string, authMiddleware *middleware.AuthMiddleware, limiters *middleware.Limiters) {
	strict := e.Group(prefix, limiters.StrictLimit())
	general := e.Group(prefix, limiters.GeneralLimit())

	SetupAuthRouter(strict, general, authMiddleware)
	SetupUserRouter(general, authMiddleware)
	SetupItemRouter(general, authMiddleware)
	SetupOrderRouter(general, authMiddleware)
	SetupContactRouter(strict)
	SetupHealthRouter(e)
}
