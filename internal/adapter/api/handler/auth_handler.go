package handler

import (
	"github.com/labstack/echo/v4"

	"thriftbay/internal/adapter/api/middleware"
	"thriftbay/internal/usecase"
	"thriftbay/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
	cookies     CookieConfig
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase, cookies CookieConfig) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cookies:     cookies,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
	Type     string `json:"type" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register creates the account. The caller still has to log in.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Type:     req.Type,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "User registered successfully", user.Sanitize())
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	c.SetCookie(h.cookies.session(result.Token))
	return response.SuccessMessage(c, "Login successful", result.User.Sanitize())
}

// Logout clears the cookie and always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	if claims, ok := middleware.ClaimsFrom(c); ok && claims.ExpiresAt != nil {
		h.authUseCase.Logout(c.Request().Context(), claims.ID, claims.ExpiresAt.Time)
	}

	c.SetCookie(h.cookies.cleared())
	return response.SuccessMessage(c, "Logged out successfully", nil)
}
