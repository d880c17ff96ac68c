package handler

import (
	"github.com/labstack/echo/v4"

	"thriftbay/internal/usecase"
	"thriftbay/pkg/response"
	"thriftbay/pkg/utils"
)

const orderPageSize = 20

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

func (h *OrderHandler) Buy(c echo.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.Buy(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Order placed successfully", order)
}

func (h *OrderHandler) ListMine(c echo.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return response.Error(c, err)
	}

	page, err := h.orderUseCase.ListMine(c.Request().Context(), uid, utils.GetPaginationParams(c, orderPageSize))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, page)
}

func (h *OrderHandler) ListForSeller(c echo.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return response.Error(c, err)
	}

	page, err := h.orderUseCase.ListForSeller(c.Request().Context(), uid, utils.GetPaginationParams(c, orderPageSize))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, page)
}
