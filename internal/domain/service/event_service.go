package service

import (
	"context"
	"time"
)

const (
	SubjectOrderCreated     = "orders.created"
	SubjectItemRated        = "items.rated"
	SubjectContactSubmitted = "contact.submitted"
)

type EventPublisher interface {
	Publish(ctx context.Context, subject string, payload interface{}) error
	Close() error
}

type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	Close() error
}
