package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"thriftbay/internal/domain/service"
	"thriftbay/internal/infrastructure/auth"
	apperrors "thriftbay/pkg/errors"
	"thriftbay/pkg/logger"
	"thriftbay/pkg/response"
)

const (
	// TokenCookie carries the session token.
	TokenCookie = "token"

	contextKeyUID    = "uid"
	contextKeyClaims = "claims"
)

type AuthMiddleware struct {
	tokens  *auth.TokenManager
	revoker service.TokenRevoker
}

func NewAuthMiddleware(tokens *auth.TokenManager, revoker service.TokenRevoker) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:  tokens,
		revoker: revoker,
	}
}

// Authenticate verifies the session cookie and exposes its claims to the
// handler. The user record is not looked up.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(TokenCookie)
		if err != nil || cookie.Value == "" {
			return response.Error(c, apperrors.Unauthenticated("Authentication required"))
		}

		claims, err := m.tokens.Verify(cookie.Value)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				return response.Error(c, apperrors.TokenExpired(err))
			}
			return response.Error(c, apperrors.InvalidToken(err))
		}

		revoked, err := m.revoker.IsRevoked(c.Request().Context(), claims.ID)
		if err != nil {
			// A broken revocation list must not lock everyone out.
			logger.BestEffort("check token revocation", err, "tokenId", claims.ID)
		} else if revoked {
			return response.Error(c, apperrors.InvalidToken(nil))
		}

		c.Set(contextKeyUID, claims.UserID)
		c.Set(contextKeyClaims, claims)

		return next(c)
	}
}

// ClaimsFrom returns the claims stored by Authenticate.
func ClaimsFrom(c echo.Context) (*auth.Claims, bool) {
	claims, ok := c.Get(contextKeyClaims).(*auth.Claims)
	return claims, ok && claims != nil
}

// UserIDFrom returns the caller id stored by Authenticate.
func UserIDFrom(c echo.Context) string {
	uid, _ := c.Get(contextKeyUID).(string)
	return uid
}
