package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"thriftbay/internal/domain/entity"
	"thriftbay/internal/domain/repository"
	"thriftbay/pkg/errors"
)

type firestoreItemRepository struct {
	client *firestore.Client
}

func NewFirestoreItemRepository(client *firestore.Client) repository.ItemRepository {
	return &firestoreItemRepository{
		client: client,
	}
}

func (r *firestoreItemRepository) items() *firestore.CollectionRef {
	return r.client.Collection(itemsCollection)
}

func (r *firestoreItemRepository) Create(ctx context.Context, item *entity.Item) error {
	if item.ID == "" {
		item.ID = r.items().NewDoc().ID
	}

	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now
	if item.Ratings == nil {
		item.Ratings = []entity.Rating{}
	}

	if _, err := r.items().Doc(item.ID).Create(ctx, item); err != nil {
		return errors.Internal("Failed to create item", err)
	}
	return nil
}

func (r *firestoreItemRepository) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	doc, err := r.items().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Item", err)
		}
		return nil, errors.Internal("Failed to get item", err)
	}

	item, err := decodeItem(doc)
	if err != nil {
		return nil, err
	}
	if item.IsDeleted {
		return nil, errors.NotFound("Item", nil)
	}
	return item, nil
}

func (r *firestoreItemRepository) baseQuery(filter repository.ItemFilter) firestore.Query {
	query := r.items().Where("isDeleted", "==", false)
	if filter.SellerID != "" {
		query = query.Where("sellerId", "==", filter.SellerID)
	}
	return query
}

func (r *firestoreItemRepository) List(ctx context.Context, filter repository.ItemFilter, limit, offset int) ([]*entity.Item, int64, error) {
	query := r.baseQuery(filter)

	total, err := countQuery(ctx, query)
	if err != nil {
		return nil, 0, errors.Internal("Failed to count items", err)
	}

	query = query.OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	items := make([]*entity.Item, 0, limit)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate items", err)
		}
		item, err := decodeItem(doc)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}

	return items, total, nil
}

// Update patches the listing fields only so concurrent ratings are never
// overwritten. The transactional read refuses items deleted since they were loaded.
func (r *firestoreItemRepository) Update(ctx context.Context, item *entity.Item) error {
	item.UpdatedAt = time.Now()

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		ref := r.items().Doc(item.ID)
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Item", err)
			}
			return err
		}
		current, err := decodeItem(doc)
		if err != nil {
			return err
		}
		if current.IsDeleted {
			return errors.NotFound("Item", nil)
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "name", Value: item.Name},
			{Path: "address", Value: item.Address},
			{Path: "price", Value: item.Price},
			{Path: "phone", Value: item.Phone},
			{Path: "type", Value: item.Type},
			{Path: "details", Value: item.Details},
			{Path: "whatsapp", Value: item.WhatsApp},
			{Path: "instagram", Value: item.Instagram},
			{Path: "facebook", Value: item.Facebook},
			{Path: "photo", Value: item.Photo},
			{Path: "updatedAt", Value: item.UpdatedAt},
		})
	})
	return errors.Wrap(err, "Failed to update item")
}

func (r *firestoreItemRepository) SoftDelete(ctx context.Context, id string) error {
	now := time.Now()
	_, err := r.items().Doc(id).Update(ctx, []firestore.Update{
		{Path: "isDeleted", Value: true},
		{Path: "deletedAt", Value: now},
		{Path: "updatedAt", Value: now},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Item", err)
		}
		return errors.Internal("Failed to delete item", err)
	}
	return nil
}

func (r *firestoreItemRepository) CountBySeller(ctx context.Context, sellerID string) (int64, error) {
	total, err := countQuery(ctx, r.baseQuery(repository.ItemFilter{SellerID: sellerID}))
	if err != nil {
		return 0, errors.Internal("Failed to count seller items", err)
	}
	return total, nil
}

// ApplyRating runs the read-modify-write inside a transaction; Firestore
// retries it when another rater commits first.
func (r *firestoreItemRepository) ApplyRating(ctx context.Context, itemID, userID string, value float64) (*entity.Item, error) {
	var rated *entity.Item

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		ref := r.items().Doc(itemID)
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Item", err)
			}
			return err
		}

		item, err := decodeItem(doc)
		if err != nil {
			return err
		}
		if item.IsDeleted {
			return errors.NotFound("Item", nil)
		}

		item.ApplyRating(userID, value)
		item.UpdatedAt = time.Now()
		rated = item

		return tx.Update(ref, []firestore.Update{
			{Path: "ratings", Value: item.Ratings},
			{Path: "ratingCount", Value: item.RatingCount},
			{Path: "ratingAverage", Value: item.RatingAverage},
			{Path: "updatedAt", Value: item.UpdatedAt},
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "Failed to rate item")
	}
	return rated, nil
}

func decodeItem(doc *firestore.DocumentSnapshot) (*entity.Item, error) {
	var item entity.Item
	if err := doc.DataTo(&item); err != nil {
		return nil, errors.Internal("Failed to parse item data", err)
	}
	if item.ID == "" {
		item.ID = doc.Ref.ID
	}
	return &item, nil
}
