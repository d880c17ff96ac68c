package usecase

import (
	"context"
	"strings"

	"thriftbay/internal/domain/entity"
	"thriftbay/internal/domain/repository"
	"thriftbay/internal/domain/service"
	"thriftbay/pkg/errors"
	"thriftbay/pkg/logger"
)

type ContactUseCase struct {
	contactRepo repository.ContactRepository
	publisher   service.EventPublisher
}

func NewContactUseCase(contactRepo repository.ContactRepository, publisher service.EventPublisher) *ContactUseCase {
	return &ContactUseCase{
		contactRepo: contactRepo,
		publisher:   publisher,
	}
}

type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
	Source  string
}

// Submit stores the message. No confirmation email is sent.
func (uc *ContactUseCase) Submit(ctx context.Context, input ContactInput) (*entity.ContactMessage, error) {
	msg := &entity.ContactMessage{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Subject: strings.TrimSpace(input.Subject),
		Message: strings.TrimSpace(input.Message),
		Source:  strings.TrimSpace(input.Source),
	}

	if msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
		return nil, errors.Validation("name, email, subject and message are required")
	}

	if err := uc.contactRepo.Create(ctx, msg); err != nil {
		return nil, errors.Wrap(err, "Failed to save contact message")
	}

	err := uc.publisher.Publish(ctx, service.SubjectContactSubmitted, msg)
	logger.BestEffort("publish contact submitted", err, "messageId", msg.ID)

	return msg, nil
}
