package handler

import (
	"net/http"
	"time"

	"thriftbay/internal/adapter/api/middleware"
)

// CookieConfig shapes the session cookie. Cross-site frontends need
// SameSite=None, which browsers only accept together with Secure.
type CookieConfig struct {
	Secure   bool
	SameSite http.SameSite
	MaxAge   time.Duration
}

func NewCookieConfig(production bool, maxAge time.Duration) CookieConfig {
	if production {
		return CookieConfig{Secure: true, SameSite: http.SameSiteNoneMode, MaxAge: maxAge}
	}
	return CookieConfig{Secure: false, SameSite: http.SameSiteLaxMode, MaxAge: maxAge}
}

func (cc CookieConfig) session(token string) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cc.MaxAge.Seconds()),
		Expires:  time.Now().Add(cc.MaxAge),
		HttpOnly: true,
		Secure:   cc.Secure,
		SameSite: cc.SameSite,
	}
}

func (cc CookieConfig) cleared() *http.Cookie {
	return &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   cc.Secure,
		SameSite: cc.SameSite,
	}
}
