package entity

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	UserTypeSeller = "seller"
	UserTypeBuyer  = "buyer"

	RoleUser  = "user"
	RoleStaff = "staff"
	RoleAdmin = "admin"

	ContactPhone    = "phone"
	ContactWhatsApp = "whatsapp"
	ContactEmail    = "email"
)

type User struct {
	ID           string `json:"id" firestore:"id"`
	Email        string `json:"email" firestore:"email"`
	PasswordHash string `json:"-" firestore:"password"`
	Name         string `json:"name" firestore:"name"`
	Phone        string `json:"phone" firestore:"phone"`
	Type         string `json:"type" firestore:"type"`
	Role         string `json:"role" firestore:"role"`

	Address          string `json:"address" firestore:"address"`
	Bio              string `json:"bio" firestore:"bio"`
	ShopName         string `json:"shopName" firestore:"shopName"`
	WhatsApp         string `json:"whatsapp" firestore:"whatsapp"`
	Instagram        string `json:"instagram" firestore:"instagram"`
	Facebook         string `json:"facebook" firestore:"facebook"`
	PreferredContact string `json:"preferredContact" firestore:"preferredContact"`
	Avatar           *Asset `json:"avatar,omitempty" firestore:"avatar,omitempty"`

	ItemsSold     int     `json:"itemsSold" firestore:"itemsSold"`
	ItemsBought   int     `json:"itemsBought" firestore:"itemsBought"`
	TotalListings int     `json:"totalListings" firestore:"totalListings"`
	RatingAverage float64 `json:"ratingAverage" firestore:"ratingAverage"`
	RatingCount   int     `json:"ratingCount" firestore:"ratingCount"`

	IsDeleted bool       `json:"isDeleted" firestore:"isDeleted"`
	LastLogin *time.Time `json:"lastLogin,omitempty" firestore:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" firestore:"updatedAt"`
}

// Counter fields updated with atomic increments.
const (
	StatItemsSold     = "itemsSold"
	StatItemsBought   = "itemsBought"
	StatTotalListings = "totalListings"
)

type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// UserView is the only shape a user leaves the API in.
type UserView struct {
	ID               string        `json:"id"`
	Email            string        `json:"email"`
	Name             string        `json:"name"`
	Phone            string        `json:"phone"`
	Type             string        `json:"type"`
	Role             string        `json:"role"`
	Address          string        `json:"address"`
	Bio              string        `json:"bio"`
	ShopName         string        `json:"shopName"`
	WhatsApp         string        `json:"whatsapp"`
	Instagram        string        `json:"instagram"`
	Facebook         string        `json:"facebook"`
	PreferredContact string        `json:"preferredContact"`
	Avatar           *string       `json:"avatar"`
	ItemsSold        int           `json:"itemsSold"`
	ItemsBought      int           `json:"itemsBought"`
	TotalListings    int           `json:"totalListings"`
	Rating           RatingSummary `json:"rating"`
	LastLogin        *time.Time    `json:"lastLogin,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

func (u *User) Sanitize() *UserView {
	var avatar *string
	if u.Avatar != nil && u.Avatar.URL != "" {
		url := u.Avatar.URL
		avatar = &url
	}

	return &UserView{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		Phone:            u.Phone,
		Type:             u.Type,
		Role:             u.Role,
		Address:          u.Address,
		Bio:              u.Bio,
		ShopName:         u.ShopName,
		WhatsApp:         u.WhatsApp,
		Instagram:        u.Instagram,
		Facebook:         u.Facebook,
		PreferredContact: u.PreferredContact,
		Avatar:           avatar,
		ItemsSold:        u.ItemsSold,
		ItemsBought:      u.ItemsBought,
		TotalListings:    u.TotalListings,
		Rating:           RatingSummary{Average: u.RatingAverage, Count: u.RatingCount},
		LastLogin:        u.LastLogin,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

// SellerSummary is the display subset attached to populated items.
type SellerSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Avatar   *string `json:"avatar"`
	ShopName string  `json:"shopName"`
}

func (u *User) Summary() *SellerSummary {
	v := u.Sanitize()
	return &SellerSummary{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Avatar:   v.Avatar,
		ShopName: u.ShopName,
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CapitalizeName upper-cases the first letter and leaves the rest untouched.
func CapitalizeName(name string) string {
	name = strings.TrimSpace(name)
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

func IsValidUserType(t string) bool {
	return t == UserTypeSeller || t == UserTypeBuyer
}

func IsValidPreferredContact(c string) bool {
	switch c {
	case ContactPhone, ContactWhatsApp, ContactEmail:
		return true
	}
	return false
}
