package repository

import (
	"context"

	"thriftbay/internal/domain/entity"
)

type ContactRepository interface {
	Create(ctx context.Context, msg *entity.ContactMessage) error
}
