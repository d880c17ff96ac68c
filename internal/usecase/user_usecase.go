package usecase

import (
	"context"
	"strings"
	"time"

	"thriftbay/internal/domain/entity"
	"thriftbay/internal/domain/repository"
	"thriftbay/internal/domain/service"
	"thriftbay/internal/infrastructure/storage"
	"thriftbay/pkg/errors"
	"thriftbay/pkg/logger"
)

type UserUseCase struct {
	userRepo repository.UserRepository
	itemRepo repository.ItemRepository
	storage  service.ObjectStorage
	hasher   PasswordHasher
	revoker  service.TokenRevoker
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	itemRepo repository.ItemRepository,
	storage service.ObjectStorage,
	hasher PasswordHasher,
	revoker service.TokenRevoker,
) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		itemRepo: itemRepo,
		storage:  storage,
		hasher:   hasher,
		revoker:  revoker,
	}
}

// UpdateProfileInput carries the whitelisted profile fields. Empty strings
// leave the stored value untouched.
type UpdateProfileInput struct {
	Name             string
	Email            string
	Phone            string
	Address          string
	Bio              string
	ShopName         string
	WhatsApp         string
	Instagram        string
	Facebook         string
	PreferredContact string

	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

func (in UpdateProfileInput) wantsPasswordChange() bool {
	return in.CurrentPassword != "" || in.NewPassword != "" || in.ConfirmPassword != ""
}

// GetMe recomputes totalListings from live items instead of the cached counter.
func (uc *UserUseCase) GetMe(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	count, err := uc.itemRepo.CountBySeller(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to count listings")
	}
	user.TotalListings = int(count)

	return user, nil
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.wantsPasswordChange() {
		if err := uc.applyPasswordChange(user, input); err != nil {
			return nil, err
		}
	}

	if email := entity.NormalizeEmail(input.Email); email != "" && email != user.Email {
		if other, err := uc.userRepo.GetByEmail(ctx, email); err == nil && other.ID != user.ID {
			return nil, errors.Conflict("Email already in use by another account")
		} else if err != nil && !errors.Is(err, errors.CodeNotFound) {
			return nil, errors.Wrap(err, "Failed to check email")
		}
		user.Email = email
	}

	if pc := strings.TrimSpace(input.PreferredContact); pc != "" {
		if !entity.IsValidPreferredContact(pc) {
			return nil, errors.Validation("preferredContact must be one of: phone, whatsapp, email")
		}
		user.PreferredContact = pc
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		user.Name = entity.CapitalizeName(name)
	}
	setIfPresent(&user.Phone, input.Phone)
	setIfPresent(&user.Address, input.Address)
	setIfPresent(&user.Bio, input.Bio)
	setIfPresent(&user.ShopName, input.ShopName)
	setIfPresent(&user.WhatsApp, input.WhatsApp)
	setIfPresent(&user.Instagram, input.Instagram)
	setIfPresent(&user.Facebook, input.Facebook)

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "Failed to update profile")
	}

	return uc.GetMe(ctx, userID)
}

// applyPasswordChange checks, in order: all three fields present, current
// password matches, new password confirmed and long enough.
func (uc *UserUseCase) applyPasswordChange(user *entity.User, input UpdateProfileInput) error {
	if input.CurrentPassword == "" || input.NewPassword == "" || input.ConfirmPassword == "" {
		return errors.Validation("currentPassword, newPassword and confirmPassword are all required to change password")
	}
	if err := uc.hasher.Compare(user.PasswordHash, input.CurrentPassword); err != nil {
		return errors.Unauthorized("Current password is incorrect", nil)
	}
	if input.NewPassword != input.ConfirmPassword {
		return errors.Validation("New password and confirmation do not match")
	}
	if len(input.NewPassword) < MinPasswordLength {
		return errors.Validation("Password must be at least 6 characters")
	}
	if len(input.NewPassword) > MaxPasswordLength {
		return errors.Validation("Password must be at most 72 bytes")
	}

	hashed, err := uc.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Internal("Failed to secure password", err)
	}
	user.PasswordHash = hashed
	return nil
}

func (uc *UserUseCase) UpdateAvatar(ctx context.Context, userID string, upload *Upload) (*entity.User, error) {
	if upload == nil || upload.Reader == nil {
		return nil, errors.Validation("Avatar image is required")
	}
	if !storage.IsImage(upload.ContentType) {
		return nil, errors.Validation("Avatar must be an image")
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	asset, err := uc.storage.Upload(ctx, upload.Reader, upload.ContentType, storage.FolderAvatars)
	if err != nil {
		return nil, errors.UploadFailed(err)
	}

	previous := user.Avatar
	user.Avatar = asset
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "Failed to save avatar")
	}

	if previous != nil {
		err := uc.storage.Delete(ctx, previous.PublicID)
		logger.BestEffort("delete old avatar", err, "userId", userID, "publicId", previous.PublicID)
	}

	return uc.GetMe(ctx, userID)
}

// DeleteAccount hard-deletes the user; external avatar cleanup and token
// revocation are best-effort.
func (uc *UserUseCase) DeleteAccount(ctx context.Context, userID, tokenID string, expiresAt time.Time) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.Avatar != nil {
		err := uc.storage.Delete(ctx, user.Avatar.PublicID)
		logger.BestEffort("delete avatar", err, "userId", userID, "publicId", user.Avatar.PublicID)
	}

	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		return errors.Wrap(err, "Failed to delete account")
	}

	if tokenID != "" {
		err := uc.revoker.Revoke(ctx, tokenID, time.Until(expiresAt))
		logger.BestEffort("revoke token on account deletion", err, "userId", userID)
	}

	logger.Info("Deleted account %s", userID)
	return nil
}

func setIfPresent(dst *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = v
	}
}
