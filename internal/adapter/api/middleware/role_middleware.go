package middleware

import (
	"github.com/labstack/echo/v4"

	apperrors "thriftbay/pkg/errors"
	"thriftbay/pkg/response"
)

// RequireType lets the request through only when the token's account type
// matches. It must run after Authenticate.
func RequireType(userType string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return response.Error(c, apperrors.Unauthenticated("Authentication required"))
			}

			if claims.Type != userType {
				return response.Error(c, apperrors.Forbidden("Only "+userType+" accounts can do this", nil))
			}

			return next(c)
		}
	}
}
