package entity

import (
	"time"
)

// Asset is a reference to an object kept in external storage.
type Asset struct {
	URL      string `json:"url" firestore:"url"`
	PublicID string `json:"publicId" firestore:"publicId"`
}

type Rating struct {
	UserID string  `json:"user" firestore:"user"`
	Value  float64 `json:"value" firestore:"value"`
}

const (
	MinRating = 1
	MaxRating = 5
)

type Item struct {
	ID        string  `json:"id" firestore:"id"`
	SellerID  string  `json:"sellerId" firestore:"sellerId"`
	Name      string  `json:"name" firestore:"name"`
	Address   string  `json:"address" firestore:"address"`
	Price     float64 `json:"price" firestore:"price"`
	Phone     string  `json:"phone" firestore:"phone"`
	Type      string  `json:"type" firestore:"type"`
	Details   string  `json:"details" firestore:"details"`
	WhatsApp  string  `json:"whatsapp" firestore:"whatsapp"`
	Instagram string  `json:"instagram" firestore:"instagram"`
	Facebook  string  `json:"facebook" firestore:"facebook"`
	Photo     *Asset  `json:"photo,omitempty" firestore:"photo,omitempty"`

	Ratings       []Rating `json:"ratings" firestore:"ratings"`
	RatingAverage float64  `json:"ratingAverage" firestore:"ratingAverage"`
	RatingCount   int      `json:"ratingCount" firestore:"ratingCount"`

	// Seller is populated on read and never stored.
	Seller *SellerSummary `json:"seller,omitempty" firestore:"-"`

	IsDeleted bool       `json:"-" firestore:"isDeleted"`
	DeletedAt *time.Time `json:"-" firestore:"deletedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" firestore:"updatedAt"`
}

func IsValidRating(value float64) bool {
	return value >= MinRating && value <= MaxRating
}

// ApplyRating upserts the user's rating and recomputes count and average.
func (i *Item) ApplyRating(userID string, value float64) {
	replaced := false
	for idx := range i.Ratings {
		if i.Ratings[idx].UserID == userID {
			i.Ratings[idx].Value = value
			replaced = true
			break
		}
	}
	if !replaced {
		i.Ratings = append(i.Ratings, Rating{UserID: userID, Value: value})
	}
	i.recomputeRating()
}

func (i *Item) recomputeRating() {
	i.RatingCount = len(i.Ratings)
	if i.RatingCount == 0 {
		i.RatingAverage = 0
		return
	}
	var sum float64
	for _, r := range i.Ratings {
		sum += r.Value
	}
	i.RatingAverage = sum / float64(i.RatingCount)
}

// RatingBy returns the user's rating value, or nil if they have not rated.
func (i *Item) RatingBy(userID string) *float64 {
	for _, r := range i.Ratings {
		if r.UserID == userID {
			v := r.Value
			return &v
		}
	}
	return nil
}

func (i *Item) Snapshot() ItemSnapshot {
	snap := ItemSnapshot{
		Name:    i.Name,
		Price:   i.Price,
		Type:    i.Type,
		Details: i.Details,
		Address: i.Address,
		Phone:   i.Phone,
	}
	if i.Photo != nil {
		photo := *i.Photo
		snap.Photo = &photo
	}
	return snap
}
