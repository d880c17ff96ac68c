package usecase

import (
	"context"

	"thriftbay/internal/domain/entity"
	"thriftbay/internal/domain/repository"
	"thriftbay/internal/domain/service"
	"thriftbay/pkg/errors"
	"thriftbay/pkg/logger"
	"thriftbay/pkg/utils"
)

type OrderUseCase struct {
	orderRepo repository.OrderRepository
	itemRepo  repository.ItemRepository
	userRepo  repository.UserRepository
	publisher service.EventPublisher
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	publisher service.EventPublisher,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

type OrderPage struct {
	Orders     []*entity.Order  `json:"orders"`
	Pagination utils.Pagination `json:"pagination"`
}

// Buy records a completed purchase with a frozen copy of the item. The
// listing itself is left untouched and stays purchasable.
func (uc *OrderUseCase) Buy(ctx context.Context, buyerID, itemID string) (*entity.Order, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if item.SellerID == buyerID {
		return nil, errors.Validation("You cannot buy your own item")
	}

	order := &entity.Order{
		BuyerID:      buyerID,
		SellerID:     item.SellerID,
		ItemID:       item.ID,
		ItemSnapshot: item.Snapshot(),
		PricePaid:    item.Price,
		Status:       entity.OrderStatusCompleted,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "Failed to create order")
	}

	err = uc.userRepo.IncrementStat(ctx, buyerID, entity.StatItemsBought, 1)
	logger.BestEffort("increment itemsBought", err, "userId", buyerID)
	err = uc.userRepo.IncrementStat(ctx, item.SellerID, entity.StatItemsSold, 1)
	logger.BestEffort("increment itemsSold", err, "userId", item.SellerID)

	err = uc.publisher.Publish(ctx, service.SubjectOrderCreated, order)
	logger.BestEffort("publish order created", err, "orderId", order.ID)

	logger.Info("Order %s created: buyer=%s item=%s", order.ID, buyerID, itemID)
	return order, nil
}

func (uc *OrderUseCase) ListMine(ctx context.Context, buyerID string, params utils.PaginationParams) (*OrderPage, error) {
	return uc.list(ctx, repository.OrderFilter{BuyerID: buyerID}, params)
}

func (uc *OrderUseCase) ListForSeller(ctx context.Context, sellerID string, params utils.PaginationParams) (*OrderPage, error) {
	return uc.list(ctx, repository.OrderFilter{SellerID: sellerID}, params)
}

func (uc *OrderUseCase) list(ctx context.Context, filter repository.OrderFilter, params utils.PaginationParams) (*OrderPage, error) {
	orders, total, err := uc.orderRepo.List(ctx, filter, params.PageSize, params.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to list orders")
	}
	return &OrderPage{
		Orders:     orders,
		Pagination: params.Meta(total),
	}, nil
}
