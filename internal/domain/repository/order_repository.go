package repository

import (
	"context"

	"thriftbay/internal/domain/entity"
)

type OrderFilter struct {
	BuyerID  string
	SellerID string
}

// Orders are append-only, so there is no update or delete.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, filter OrderFilter, limit, offset int) ([]*entity.Order, int64, error)
}
