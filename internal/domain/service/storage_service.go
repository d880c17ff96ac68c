package service

import (
	"context"
	"io"

	"thriftbay/internal/domain/entity"
)

type ObjectStorage interface {
	Upload(ctx context.Context, file io.Reader, contentType, folder string) (*entity.Asset, error)
	Delete(ctx context.Context, publicID string) error
	Close() error
}
