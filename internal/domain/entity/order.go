package entity

import (
	"time"
)

const (
	OrderStatusCreated   = "created"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// ItemSnapshot freezes the sellable fields of an item at purchase time.
type ItemSnapshot struct {
	Name    string  `json:"name" firestore:"name"`
	Price   float64 `json:"price" firestore:"price"`
	Type    string  `json:"type" firestore:"type"`
	Details string  `json:"details" firestore:"details"`
	Photo   *Asset  `json:"photo,omitempty" firestore:"photo,omitempty"`
	Address string  `json:"address" firestore:"address"`
	Phone   string  `json:"phone" firestore:"phone"`
}

type Order struct {
	ID           string       `json:"id" firestore:"id"`
	BuyerID      string       `json:"buyerId" firestore:"buyerId"`
	SellerID     string       `json:"sellerId" firestore:"sellerId"`
	ItemID       string       `json:"itemId" firestore:"itemId"`
	ItemSnapshot ItemSnapshot `json:"itemSnapshot" firestore:"itemSnapshot"`
	PricePaid    float64      `json:"pricePaid" firestore:"pricePaid"`
	Status       string       `json:"status" firestore:"status"`
	CreatedAt    time.Time    `json:"createdAt" firestore:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt" firestore:"updatedAt"`
}
