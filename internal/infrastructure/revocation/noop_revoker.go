package revocation

import (
	"context"
	"time"

	"thriftbay/internal/domain/service"
)

// NoopRevoker is used when no revocation list is configured: tokens stay
// valid until they expire.
type NoopRevoker struct{}

var _ service.TokenRevoker = NoopRevoker{}

func (NoopRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return nil
}

func (NoopRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return false, nil
}

func (NoopRevoker) Close() error {
	return nil
}
