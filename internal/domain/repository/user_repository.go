package repository

import (
	"context"
	"time"

	"thriftbay/internal/domain/entity"
)

type UserRepository interface {
	// Create fails with a CONFLICT error when the email is already taken.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error)
	// Update writes profile fields, credentials and avatar. Counters are left
	// alone; they only move through IncrementStat.
	Update(ctx context.Context, user *entity.User) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
	IncrementStat(ctx context.Context, id, field string, delta int) error
}
