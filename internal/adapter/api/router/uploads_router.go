package router

import (
	"github.com/labstack/echo/v4"
)

// SetupUploadsRouter serves the local-disk object store. Only used when
// uploads are not going to Cloud Storage.
func SetupUploadsRouter(e *echo.Echo, dir string) {
	e.Static("/uploads", dir)
}
