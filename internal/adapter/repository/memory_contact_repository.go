package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"thriftbay/internal/domain/entity"
	"thriftbay/internal/domain/repository"
)

type MemoryContactRepository struct {
	mu       sync.RWMutex
	messages []entity.ContactMessage
}

func NewMemoryContactRepository() *MemoryContactRepository {
	return &MemoryContactRepository{}
}

var _ repository.ContactRepository = (*MemoryContactRepository)(nil)

func (r *MemoryContactRepository) Create(ctx context.Context, msg *entity.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	now := time.Now()
	msg.CreatedAt = now
	msg.UpdatedAt = now

	r.messages = append(r.messages, *msg)
	return nil
}

// Messages returns a copy of everything submitted so far.
func (r *MemoryContactRepository) Messages() []entity.ContactMessage {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]entity.ContactMessage(nil), r.messages...)
}
