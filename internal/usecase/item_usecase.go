package usecase

import (
	"context"
	"strings"

	"thriftbay/internal/domain/entity"
	"thriftbay/internal/domain/repository"
	"thriftbay/internal/domain/service"
	"thriftbay/internal/infrastructure/storage"
	"thriftbay/pkg/errors"
	"thriftbay/pkg/logger"
	"thriftbay/pkg/utils"
)

type ItemUseCase struct {
	itemRepo  repository.ItemRepository
	userRepo  repository.UserRepository
	storage   service.ObjectStorage
	publisher service.EventPublisher
}

func NewItemUseCase(
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	storage service.ObjectStorage,
	publisher service.EventPublisher,
) *ItemUseCase {
	return &ItemUseCase{
		itemRepo:  itemRepo,
		userRepo:  userRepo,
		storage:   storage,
		publisher: publisher,
	}
}

// ItemInput holds the whitelisted listing fields. A nil Price means the
// client did not send one.
type ItemInput struct {
	Name      string
	Address   string
	Price     *float64
	Phone     string
	Type      string
	Details   string
	WhatsApp  string
	Instagram string
	Facebook  string
}

type ItemPage struct {
	Items      []*entity.Item   `json:"items"`
	Pagination utils.Pagination `json:"pagination"`
}

type RatingResult struct {
	ItemID        string   `json:"itemId"`
	MyRating      *float64 `json:"myRating"`
	RatingAverage float64  `json:"ratingAverage"`
	RatingCount   int      `json:"ratingCount"`
}

func (uc *ItemUseCase) CreateItem(ctx context.Context, sellerID, sellerType string, input ItemInput, photo *Upload) (*entity.Item, error) {
	if sellerType != entity.UserTypeSeller {
		return nil, errors.Forbidden("Only sellers can post items", nil)
	}

	item := &entity.Item{
		SellerID:  sellerID,
		Name:      strings.TrimSpace(input.Name),
		Address:   strings.TrimSpace(input.Address),
		Phone:     strings.TrimSpace(input.Phone),
		Type:      strings.TrimSpace(input.Type),
		Details:   strings.TrimSpace(input.Details),
		WhatsApp:  strings.TrimSpace(input.WhatsApp),
		Instagram: strings.TrimSpace(input.Instagram),
		Facebook:  strings.TrimSpace(input.Facebook),
		Ratings:   []entity.Rating{},
	}

	if item.Name == "" || item.Address == "" || item.Phone == "" || item.Type == "" || item.Details == "" || input.Price == nil {
		return nil, errors.Validation("name, address, price, phone, type and details are required")
	}
	if *input.Price < 0 {
		return nil, errors.Validation("price must be a non-negative number")
	}
	item.Price = *input.Price

	if photo != nil {
		if !storage.IsImage(photo.ContentType) {
			return nil, errors.Validation("photo must be an image")
		}
		asset, err := uc.storage.Upload(ctx, photo.Reader, photo.ContentType, storage.FolderItems)
		if err != nil {
			return nil, errors.UploadFailed(err)
		}
		item.Photo = asset
	}

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		if item.Photo != nil {
			derr := uc.storage.Delete(ctx, item.Photo.PublicID)
			logger.BestEffort("remove orphaned photo", derr, "publicId", item.Photo.PublicID)
		}
		return nil, errors.Wrap(err, "Failed to create item")
	}

	err := uc.userRepo.IncrementStat(ctx, sellerID, entity.StatTotalListings, 1)
	logger.BestEffort("increment totalListings", err, "userId", sellerID)

	return item, nil
}

func (uc *ItemUseCase) ListOwn(ctx context.Context, sellerID string, params utils.PaginationParams) (*ItemPage, error) {
	return uc.list(ctx, repository.ItemFilter{SellerID: sellerID}, params, false)
}

func (uc *ItemUseCase) ListPublic(ctx context.Context, params utils.PaginationParams) (*ItemPage, error) {
	return uc.list(ctx, repository.ItemFilter{}, params, true)
}

func (uc *ItemUseCase) ListBySeller(ctx context.Context, sellerID string, params utils.PaginationParams) (*ItemPage, error) {
	return uc.list(ctx, repository.ItemFilter{SellerID: sellerID}, params, true)
}

func (uc *ItemUseCase) list(ctx context.Context, filter repository.ItemFilter, params utils.PaginationParams, populate bool) (*ItemPage, error) {
	items, total, err := uc.itemRepo.List(ctx, filter, params.PageSize, params.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to list items")
	}

	if populate {
		if err := uc.populateSellers(ctx, items...); err != nil {
			return nil, err
		}
	}

	return &ItemPage{
		Items:      items,
		Pagination: params.Meta(total),
	}, nil
}

func (uc *ItemUseCase) GetDetails(ctx context.Context, itemID string) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := uc.populateSellers(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *ItemUseCase) populateSellers(ctx context.Context, items ...*entity.Item) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.SellerID)
	}

	sellers, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "Failed to load sellers")
	}

	for _, item := range items {
		if seller, ok := sellers[item.SellerID]; ok {
			item.Seller = seller.Summary()
		}
	}
	return nil
}

// loadOwned fetches the item and checks the caller is its seller.
func (uc *ItemUseCase) loadOwned(ctx context.Context, callerID, itemID string) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.SellerID != callerID {
		return nil, errors.Forbidden("You can only modify your own items", nil)
	}
	return item, nil
}

func (uc *ItemUseCase) UpdateItem(ctx context.Context, callerID, itemID string, input ItemInput, photo *Upload) (*entity.Item, error) {
	item, err := uc.loadOwned(ctx, callerID, itemID)
	if err != nil {
		return nil, err
	}

	if input.Price != nil {
		if *input.Price < 0 {
			return nil, errors.Validation("price must be a non-negative number")
		}
		item.Price = *input.Price
	}
	setIfPresent(&item.Name, input.Name)
	setIfPresent(&item.Address, input.Address)
	setIfPresent(&item.Phone, input.Phone)
	setIfPresent(&item.Type, input.Type)
	setIfPresent(&item.Details, input.Details)
	setIfPresent(&item.WhatsApp, input.WhatsApp)
	setIfPresent(&item.Instagram, input.Instagram)
	setIfPresent(&item.Facebook, input.Facebook)

	// The old photo is removed only once the item points at the new one.
	var replaced *entity.Asset
	if photo != nil {
		if !storage.IsImage(photo.ContentType) {
			return nil, errors.Validation("photo must be an image")
		}
		asset, err := uc.storage.Upload(ctx, photo.Reader, photo.ContentType, storage.FolderItems)
		if err != nil {
			return nil, errors.UploadFailed(err)
		}
		replaced, item.Photo = item.Photo, asset
	}

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, errors.Wrap(err, "Failed to update item")
	}

	if replaced != nil {
		err := uc.storage.Delete(ctx, replaced.PublicID)
		logger.BestEffort("delete old item photo", err, "itemId", itemID, "publicId", replaced.PublicID)
	}
	return item, nil
}

// DeleteItem soft-deletes so orders keep a resolvable item id.
func (uc *ItemUseCase) DeleteItem(ctx context.Context, callerID, itemID string) error {
	item, err := uc.loadOwned(ctx, callerID, itemID)
	if err != nil {
		return err
	}

	if item.Photo != nil {
		err := uc.storage.Delete(ctx, item.Photo.PublicID)
		logger.BestEffort("delete item photo", err, "itemId", itemID, "publicId", item.Photo.PublicID)
	}

	if err := uc.itemRepo.SoftDelete(ctx, itemID); err != nil {
		return errors.Wrap(err, "Failed to delete item")
	}

	err = uc.userRepo.IncrementStat(ctx, callerID, entity.StatTotalListings, -1)
	logger.BestEffort("decrement totalListings", err, "userId", callerID)
	return nil
}

func (uc *ItemUseCase) SetRating(ctx context.Context, callerID, itemID string, value float64) (*RatingResult, error) {
	if !entity.IsValidRating(value) {
		return nil, errors.Validation("rating must be between 1 and 5")
	}

	item, err := uc.itemRepo.ApplyRating(ctx, itemID, callerID, value)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to rate item")
	}

	result := &RatingResult{
		ItemID:        item.ID,
		MyRating:      item.RatingBy(callerID),
		RatingAverage: item.RatingAverage,
		RatingCount:   item.RatingCount,
	}

	err = uc.publisher.Publish(ctx, service.SubjectItemRated, result)
	logger.BestEffort("publish item rated", err, "itemId", itemID)

	return result, nil
}

func (uc *ItemUseCase) GetMyRating(ctx context.Context, callerID, itemID string) (*RatingResult, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	return &RatingResult{
		ItemID:        item.ID,
		MyRating:      item.RatingBy(callerID),
		RatingAverage: item.RatingAverage,
		RatingCount:   item.RatingCount,
	}, nil
}
