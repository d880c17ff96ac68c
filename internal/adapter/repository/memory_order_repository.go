package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"thriftbay/internal/domain/entity"
	"thriftbay/internal/domain/repository"
	"thriftbay/pkg/errors"
)

type memoryOrderRepository struct {
	mu     sync.RWMutex
	orders []*entity.Order
}

func NewMemoryOrderRepository() repository.OrderRepository {
	return &memoryOrderRepository{}
}

func cloneOrder(o *entity.Order) *entity.Order {
	c := *o
	if o.ItemSnapshot.Photo != nil {
		photo := *o.ItemSnapshot.Photo
		c.ItemSnapshot.Photo = &photo
	}
	return &c
}

func (r *memoryOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	r.orders = append(r.orders, cloneOrder(order))
	return nil
}

func (r *memoryOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			return cloneOrder(o), nil
		}
	}
	return nil, errors.NotFound("Order", nil)
}

func (r *memoryOrderRepository) List(ctx context.Context, filter repository.OrderFilter, limit, offset int) ([]*entity.Order, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// r.orders is in insertion order; walk it backwards for newest first.
	var matched []*entity.Order
	for i := len(r.orders) - 1; i >= 0; i-- {
		o := r.orders[i]
		if filter.BuyerID != "" && o.BuyerID != filter.BuyerID {
			continue
		}
		if filter.SellerID != "" && o.SellerID != filter.SellerID {
			continue
		}
		matched = append(matched, o)
	}
	sort.SliceStable(matched, func(a, b int) bool {
		return matched[a].CreatedAt.After(matched[b].CreatedAt)
	})

	orders := make([]*entity.Order, 0)
	for _, o := range window(matched, limit, offset) {
		orders = append(orders, cloneOrder(o))
	}
	return orders, int64(len(matched)), nil
}
