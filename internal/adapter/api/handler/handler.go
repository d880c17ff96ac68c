package handler

import (
	"thriftbay/internal/usecase"
)

var (
	authHandler    *AuthHandler
	userHandler    *UserHandler
	itemHandler    *ItemHandler
	orderHandler   *OrderHandler
	contactHandler *ContactHandler
	healthHandler  *HealthHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	itemUseCase *usecase.ItemUseCase,
	orderUseCase *usecase.OrderUseCase,
	contactUseCase *usecase.ContactUseCase,
	cookies CookieConfig,
	maxUploadBytes int64,
) {
	authHandler = NewAuthHandler(authUseCase, cookies)
	userHandler = NewUserHandler(userUseCase, cookies, maxUploadBytes)
	itemHandler = NewItemHandler(itemUseCase, maxUploadBytes)
	orderHandler = NewOrderHandler(orderUseCase)
	contactHandler = NewContactHandler(contactUseCase)
	healthHandler = NewHealthHandler()
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetItemHandler() *ItemHandler {
	return itemHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetContactHandler() *ContactHandler {
	return contactHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
