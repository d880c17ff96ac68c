package repository

import (
	"context"

	"thriftbay/internal/domain/entity"
)

type ItemFilter struct {
	SellerID string
}

// ItemRepository never returns soft-deleted items.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	// List returns newest first along with the total matching count.
	List(ctx context.Context, filter ItemFilter, limit, offset int) ([]*entity.Item, int64, error)
	Update(ctx context.Context, item *entity.Item) error
	SoftDelete(ctx context.Context, id string) error
	CountBySeller(ctx context.Context, sellerID string) (int64, error)
	// ApplyRating upserts the rating and recomputes the aggregate in one atomic step.
	ApplyRating(ctx context.Context, itemID, userID string, value float64) (*entity.Item, error)
}
