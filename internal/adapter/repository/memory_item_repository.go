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

type memoryItem struct {
	item *entity.Item
	seq  int64
}

type memoryItemRepository struct {
	mu    sync.RWMutex
	items map[string]*memoryItem
	seq   int64
}

func NewMemoryItemRepository() repository.ItemRepository {
	return &memoryItemRepository{
		items: make(map[string]*memoryItem),
	}
}

func cloneItem(i *entity.Item) *entity.Item {
	c := *i
	if i.Photo != nil {
		photo := *i.Photo
		c.Photo = &photo
	}
	c.Ratings = append([]entity.Rating{}, i.Ratings...)
	if i.DeletedAt != nil {
		t := *i.DeletedAt
		c.DeletedAt = &t
	}
	c.Seller = nil
	return &c
}

func (r *memoryItemRepository) Create(ctx context.Context, item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now
	if item.Ratings == nil {
		item.Ratings = []entity.Rating{}
	}

	r.seq++
	r.items[item.ID] = &memoryItem{item: cloneItem(item), seq: r.seq}
	return nil
}

// live returns the stored item unless it is missing or soft-deleted. Callers hold the lock.
func (r *memoryItemRepository) live(id string) (*memoryItem, error) {
	m, ok := r.items[id]
	if !ok || m.item.IsDeleted {
		return nil, errors.NotFound("Item", nil)
	}
	return m, nil
}

func (r *memoryItemRepository) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, err := r.live(id)
	if err != nil {
		return nil, err
	}
	return cloneItem(m.item), nil
}

func (r *memoryItemRepository) matching(filter repository.ItemFilter) []*memoryItem {
	var out []*memoryItem
	for _, m := range r.items {
		if m.item.IsDeleted {
			continue
		}
		if filter.SellerID != "" && m.item.SellerID != filter.SellerID {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (r *memoryItemRepository) List(ctx context.Context, filter repository.ItemFilter, limit, offset int) ([]*entity.Item, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.matching(filter)
	sort.Slice(matched, func(a, b int) bool {
		ta, tb := matched[a].item.CreatedAt, matched[b].item.CreatedAt
		if !ta.Equal(tb) {
			return ta.After(tb)
		}
		return matched[a].seq > matched[b].seq
	})

	total := int64(len(matched))
	items := make([]*entity.Item, 0)
	for _, m := range window(matched, limit, offset) {
		items = append(items, cloneItem(m.item))
	}
	return items, total, nil
}

func (r *memoryItemRepository) Update(ctx context.Context, item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, err := r.live(item.ID)
	if err != nil {
		return err
	}

	item.UpdatedAt = time.Now()
	next := cloneItem(item)
	next.SellerID = m.item.SellerID
	next.Ratings = m.item.Ratings
	next.RatingAverage = m.item.RatingAverage
	next.RatingCount = m.item.RatingCount
	next.CreatedAt = m.item.CreatedAt
	next.IsDeleted = m.item.IsDeleted
	next.DeletedAt = m.item.DeletedAt
	m.item = next
	return nil
}

func (r *memoryItemRepository) SoftDelete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, err := r.live(id)
	if err != nil {
		return err
	}
	now := time.Now()
	m.item.IsDeleted = true
	m.item.DeletedAt = &now
	m.item.UpdatedAt = now
	return nil
}

func (r *memoryItemRepository) CountBySeller(ctx context.Context, sellerID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.matching(repository.ItemFilter{SellerID: sellerID}))), nil
}

func (r *memoryItemRepository) ApplyRating(ctx context.Context, itemID, userID string, value float64) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, err := r.live(itemID)
	if err != nil {
		return nil, err
	}
	m.item.ApplyRating(userID, value)
	m.item.UpdatedAt = time.Now()
	return cloneItem(m.item), nil
}

// window slices out one page of an already sorted result.
func window[T any](all []T, limit, offset int) []T {
	if offset < 0 || offset >= len(all) {
		return nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end]
}
