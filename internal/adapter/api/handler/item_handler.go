package handler

import (
	"github.com/labstack/echo/v4"

	"thriftbay/internal/adapter/api/middleware"
	"thriftbay/internal/usecase"
	apperrors "thriftbay/pkg/errors"
	"thriftbay/pkg/response"
	"thriftbay/pkg/utils"
)

const (
	feedPageSize   = 20
	sellerPageSize = 10
)

type ItemHandler struct {
	itemUseCase    *usecase.ItemUseCase
	maxUploadBytes int64
}

func NewItemHandler(itemUseCase *usecase.ItemUseCase, maxUploadBytes int64) *ItemHandler {
	return &ItemHandler{
		itemUseCase:    itemUseCase,
		maxUploadBytes: maxUploadBytes,
	}
}

// itemRequest accepts both JSON and multipart form bodies.
type itemRequest struct {
	Name      string     `json:"name" form:"name"`
	Address   string     `json:"address" form:"address"`
	Price     formNumber `json:"price" form:"price"`
	Phone     string     `json:"phone" form:"phone"`
	Type      string     `json:"type" form:"type"`
	Details   string     `json:"details" form:"details"`
	WhatsApp  string     `json:"whatsapp" form:"whatsapp"`
	Instagram string     `json:"instagram" form:"instagram"`
	Facebook  string     `json:"facebook" form:"facebook"`
}

func (r itemRequest) input() usecase.ItemInput {
	return usecase.ItemInput{
		Name:      r.Name,
		Address:   r.Address,
		Price:     r.Price.ptr(),
		Phone:     r.Phone,
		Type:      r.Type,
		Details:   r.Details,
		WhatsApp:  r.WhatsApp,
		Instagram: r.Instagram,
		Facebook:  r.Facebook,
	}
}

type rateRequest struct {
	Rating *float64 `json:"rating" validate:"required"`
}

func (h *ItemHandler) CreateItem(c echo.Context) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return response.Error(c, apperrors.Unauthenticated("Authentication required"))
	}

	var req itemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	photo, release, err := formUpload(c, "photo", h.maxUploadBytes)
	if err != nil {
		return response.Error(c, err)
	}
	defer release()

	item, err := h.itemUseCase.CreateItem(c.Request().Context(), claims.UserID, claims.Type, req.input(), photo)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Item created successfully", item)
}

// ListPublic serves the authenticated feed.
func (h *ItemHandler) ListPublic(c echo.Context) error {
	return h.listPublic(c, feedPageSize)
}

// ListPublicForSellers is the anonymous, seller-namespaced variant of the feed.
func (h *ItemHandler) ListPublicForSellers(c echo.Context) error {
	return h.listPublic(c, sellerPageSize)
}

func (h *ItemHandler) listPublic(c echo.Context, defaultPageSize int) error {
	page, err := h.itemUseCase.ListPublic(c.Request().Context(), utils.GetPaginationParams(c, defaultPageSize))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, page)
}

func (h *ItemHandler) ListOwn(c echo.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return response.Error(c, err)
	}

	page, err := h.itemUseCase.ListOwn(c.Request().Context(), uid, utils.GetPaginationParams(c, sellerPageSize))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, page)
}

func (h *ItemHandler) ListBySeller(c echo.Context) error {
	page, err := h.itemUseCase.ListBySeller(c.Request().Context(), c.Param("id"), utils.GetPaginationParams(c, sellerPageSize))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, page)
}

func (h *ItemHandler) GetDetails(c echo.Context) error {
	item, err := h.itemUseCase.GetDetails(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, item)
}

func (h *ItemHandler) UpdateItem(c echo.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req itemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	photo, release, err := formUpload(c, "photo", h.maxUploadBytes)
	if err != nil {
		return response.Error(c, err)
	}
	defer release()

	item, err := h.itemUseCase.UpdateItem(c.Request().Context(), uid, c.Param("id"), req.input(), photo)
	if err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Item updated successfully", item)
}

func (h *ItemHandler) DeleteItem(c echo.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.itemUseCase.DeleteItem(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Item deleted successfully", nil)
}

func (h *ItemHandler) SetRating(c echo.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req rateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.itemUseCase.SetRating(c.Request().Context(), uid, c.Param("id"), *req.Rating)
	if err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Rating saved", result)
}

func (h *ItemHandler) GetMyRating(c echo.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return response.Error(c, err)
	}

	result, err := h.itemUseCase.GetMyRating(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
