package events

import (
	"context"

	"thriftbay/internal/domain/service"
	"thriftbay/pkg/logger"
)

// LogPublisher stands in when NATS is not configured and only logs events at debug level.
type LogPublisher struct{}

var _ service.EventPublisher = LogPublisher{}

func (LogPublisher) Publish(ctx context.Context, subject string, payload interface{}) error {
	logger.Debug("event %s: %+v", subject, payload)
	return nil
}

func (LogPublisher) Close() error {
	return nil
}
