package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"thriftbay/internal/adapter/api/middleware"
	"thriftbay/internal/usecase"
	apperrors "thriftbay/pkg/errors"
	"thriftbay/pkg/response"
)

type UserHandler struct {
	userUseCase    *usecase.UserUseCase
	cookies        CookieConfig
	maxUploadBytes int64
}

func NewUserHandler(userUseCase *usecase.UserUseCase, cookies CookieConfig, maxUploadBytes int64) *UserHandler {
	return &UserHandler{
		userUseCase:    userUseCase,
		cookies:        cookies,
		maxUploadBytes: maxUploadBytes,
	}
}

type updateProfileRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	Bio              string `json:"bio"`
	ShopName         string `json:"shopName"`
	WhatsApp         string `json:"whatsapp"`
	Instagram        string `json:"instagram"`
	Facebook         string `json:"facebook"`
	PreferredContact string `json:"preferredContact"`
	CurrentPassword  string `json:"currentPassword"`
	NewPassword      string `json:"newPassword"`
	ConfirmPassword  string `json:"confirmPassword"`
}

func (h *UserHandler) GetMe(c echo.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.GetMe(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user.Sanitize())
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req updateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		Bio:              req.Bio,
		ShopName:         req.ShopName,
		WhatsApp:         req.WhatsApp,
		Instagram:        req.Instagram,
		Facebook:         req.Facebook,
		PreferredContact: req.PreferredContact,
		CurrentPassword:  req.CurrentPassword,
		NewPassword:      req.NewPassword,
		ConfirmPassword:  req.ConfirmPassword,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Profile updated successfully", user.Sanitize())
}

func (h *UserHandler) UploadAvatar(c echo.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return response.Error(c, err)
	}

	upload, release, err := formUpload(c, "avatar", h.maxUploadBytes)
	if err != nil {
		return response.Error(c, err)
	}
	defer release()
	if upload == nil {
		return response.Error(c, apperrors.Validation("No image file provided"))
	}

	user, err := h.userUseCase.UpdateAvatar(c.Request().Context(), uid, upload)
	if err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Avatar updated successfully", user.Sanitize())
}

func (h *UserHandler) DeleteAccount(c echo.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var (
		tokenID   string
		expiresAt time.Time
	)
	if claims, ok := middleware.ClaimsFrom(c); ok && claims.ExpiresAt != nil {
		tokenID, expiresAt = claims.ID, claims.ExpiresAt.Time
	}

	if err := h.userUseCase.DeleteAccount(c.Request().Context(), uid, tokenID, expiresAt); err != nil {
		return response.Error(c, err)
	}

	c.SetCookie(h.cookies.cleared())
	return response.SuccessMessage(c, "Account deleted successfully", nil)
}
