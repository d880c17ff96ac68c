package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"thriftbay/internal/domain/entity"
	"thriftbay/internal/domain/repository"
	"thriftbay/pkg/errors"
)

type memoryUserRepository struct {
	mu      sync.RWMutex
	users   map[string]*entity.User
	byEmail map[string]string
}

func NewMemoryUserRepository() repository.UserRepository {
	return &memoryUserRepository{
		users:   make(map[string]*entity.User),
		byEmail: make(map[string]string),
	}
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	if u.Avatar != nil {
		avatar := *u.Avatar
		c.Avatar = &avatar
	}
	if u.LastLogin != nil {
		t := *u.LastLogin
		c.LastLogin = &t
	}
	return &c
}

func (r *memoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[user.Email]; taken {
		return errors.Conflict("Email already registered")
	}

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	r.users[user.ID] = cloneUser(user)
	r.byEmail[user.Email] = user.ID
	return nil
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return cloneUser(u), nil
}

func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return cloneUser(r.users[id]), nil
}

func (r *memoryUserRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*entity.User, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			result[id] = cloneUser(u)
		}
	}
	return result, nil
}

func (r *memoryUserRepository) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.users[user.ID]
	if !ok {
		return errors.NotFound("User", nil)
	}

	if current.Email != user.Email {
		if owner, taken := r.byEmail[user.Email]; taken && owner != user.ID {
			return errors.Conflict("Email already in use by another account")
		}
		delete(r.byEmail, current.Email)
		r.byEmail[user.Email] = user.ID
	}

	user.UpdatedAt = time.Now()
	next := cloneUser(user)
	next.ItemsSold = current.ItemsSold
	next.ItemsBought = current.ItemsBought
	next.TotalListings = current.TotalListings
	next.RatingAverage = current.RatingAverage
	next.RatingCount = current.RatingCount
	next.LastLogin = current.LastLogin
	next.CreatedAt = current.CreatedAt
	r.users[user.ID] = next
	return nil
}

func (r *memoryUserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	u.LastLogin = &at
	return nil
}

func (r *memoryUserRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	delete(r.byEmail, u.Email)
	delete(r.users, id)
	return nil
}

func (r *memoryUserRepository) IncrementStat(ctx context.Context, id, field string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}

	switch field {
	case entity.StatItemsSold:
		u.ItemsSold += delta
	case entity.StatItemsBought:
		u.ItemsBought += delta
	case entity.StatTotalListings:
		u.TotalListings += delta
	default:
		return errors.Internal("Unknown user stat", nil)
	}
	return nil
}
