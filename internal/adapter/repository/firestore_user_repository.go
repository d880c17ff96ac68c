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

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) users() *firestore.CollectionRef {
	return r.client.Collection(usersCollection)
}

func (r *firestoreUserRepository) emailLock(email string) *firestore.DocumentRef {
	return r.client.Collection(userEmailsCollection).Doc(emailLockID(email))
}

// Create claims the email lock and writes the user in the same transaction.
func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = r.users().NewDoc().ID
	}
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		lockRef := r.emailLock(user.Email)
		if _, err := tx.Get(lockRef); err == nil {
			return errors.Conflict("Email already registered")
		} else if status.Code(err) != codes.NotFound {
			return err
		}

		if err := tx.Create(lockRef, map[string]interface{}{"userId": user.ID, "email": user.Email}); err != nil {
			return err
		}
		return tx.Create(r.users().Doc(user.ID), user)
	})
	if err != nil {
		return errors.Wrap(err, "Failed to create user")
	}
	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.users().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}
	return &user, nil
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	iter := r.users().Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("User", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to get user by email", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}
	return &user, nil
}

func (r *firestoreUserRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	result := make(map[string]*entity.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	refs := make([]*firestore.DocumentRef, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		refs = append(refs, r.users().Doc(id))
	}

	docs, err := r.client.GetAll(ctx, refs)
	if err != nil {
		return nil, errors.Internal("Failed to get users", err)
	}

	for _, doc := range docs {
		if !doc.Exists() {
			continue
		}
		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return nil, errors.Internal("Failed to parse user data", err)
		}
		result[user.ID] = &user
	}
	return result, nil
}

// Update moves the email lock when the email changes, failing with CONFLICT
// when another account holds the new address.
func (r *firestoreUserRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		userRef := r.users().Doc(user.ID)
		snap, err := tx.Get(userRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("User", err)
			}
			return err
		}
		var current entity.User
		if err := snap.DataTo(&current); err != nil {
			return err
		}

		emailChanged := current.Email != user.Email
		if emailChanged {
			lockSnap, err := tx.Get(r.emailLock(user.Email))
			if err == nil {
				if owner, _ := lockSnap.DataAt("userId"); owner != user.ID {
					return errors.Conflict("Email already in use by another account")
				}
			} else if status.Code(err) != codes.NotFound {
				return err
			}
		}

		if emailChanged {
			if err := tx.Set(r.emailLock(user.Email), map[string]interface{}{"userId": user.ID, "email": user.Email}); err != nil {
				return err
			}
			if err := tx.Delete(r.emailLock(current.Email)); err != nil {
				return err
			}
		}

		return tx.Update(userRef, []firestore.Update{
			{Path: "email", Value: user.Email},
			{Path: "password", Value: user.PasswordHash},
			{Path: "name", Value: user.Name},
			{Path: "phone", Value: user.Phone},
			{Path: "type", Value: user.Type},
			{Path: "role", Value: user.Role},
			{Path: "address", Value: user.Address},
			{Path: "bio", Value: user.Bio},
			{Path: "shopName", Value: user.ShopName},
			{Path: "whatsapp", Value: user.WhatsApp},
			{Path: "instagram", Value: user.Instagram},
			{Path: "facebook", Value: user.Facebook},
			{Path: "preferredContact", Value: user.PreferredContact},
			{Path: "avatar", Value: user.Avatar},
			{Path: "updatedAt", Value: user.UpdatedAt},
		})
	})
	if err != nil {
		return errors.Wrap(err, "Failed to update user")
	}
	return nil
}

func (r *firestoreUserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.users().Doc(id).Update(ctx, []firestore.Update{
		{Path: "lastLogin", Value: at},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("User", err)
		}
		return errors.Internal("Failed to update last login", err)
	}
	return nil
}

// Delete removes the user document together with its email lock.
func (r *firestoreUserRepository) Delete(ctx context.Context, id string) error {
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		userRef := r.users().Doc(id)
		snap, err := tx.Get(userRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("User", err)
			}
			return err
		}
		email, _ := snap.DataAt("email")
		if s, ok := email.(string); ok && s != "" {
			if err := tx.Delete(r.emailLock(s)); err != nil {
				return err
			}
		}
		return tx.Delete(userRef)
	})
	if err != nil {
		return errors.Wrap(err, "Failed to delete user")
	}
	return nil
}

func (r *firestoreUserRepository) IncrementStat(ctx context.Context, id, field string, delta int) error {
	_, err := r.users().Doc(id).Update(ctx, []firestore.Update{
		{Path: field, Value: firestore.Increment(delta)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("User", err)
		}
		return errors.Internal("Failed to update user stats", err)
	}
	return nil
}
