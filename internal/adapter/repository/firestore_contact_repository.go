package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"thriftbay/internal/domain/entity"
	"thriftbay/internal/domain/repository"
	"thriftbay/pkg/errors"
)

type firestoreContactRepository struct {
	client *firestore.Client
}

func NewFirestoreContactRepository(client *firestore.Client) repository.ContactRepository {
	return &firestoreContactRepository{
		client: client,
	}
}

func (r *firestoreContactRepository) Create(ctx context.Context, msg *entity.ContactMessage) error {
	col := r.client.Collection(contactsCollection)
	if msg.ID == "" {
		msg.ID = col.NewDoc().ID
	}
	now := time.Now()
	msg.CreatedAt = now
	msg.UpdatedAt = now

	if _, err := col.Doc(msg.ID).Create(ctx, msg); err != nil {
		return errors.Internal("Failed to save contact message", err)
	}
	return nil
}
