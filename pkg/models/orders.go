package models

import (
	"github.com/google/uuid"
)

// OrderClick records a buyer's WhatsApp order intent for a listing. The
// actual conversation happens on WhatsApp; this is what feeds the seller
// dashboard's order feed.
type OrderClick struct {
	BaseSellerModel
	ListingID uuid.UUID  `gorm:"type:uuid;not null;index" json:"listing_id"`
	BuyerID   *uuid.UUID `gorm:"type:uuid;index" json:"buyer_id"` // nil for anonymous buyers
	Message   string     `gorm:"type:text" json:"message"`        // Prefilled WhatsApp message snapshot
	WALink    string     `json:"wa_link"`

	Listing *Listing `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
	Buyer   *User    `gorm:"foreignKey:BuyerID" json:"buyer,omitempty"`
}

// Favorite bookmarks a seller for a buyer
type Favorite struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uni_favorites_user_seller" json:"user_id"`
	SellerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uni_favorites_user_seller" json:"seller_id"`

	Seller *Seller `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
}

// OrderRequest represents the optional payload of an order click
type OrderRequest struct {
	Quantity int    `json:"quantity" validate:"omitempty,min=1"`
	Note     string `json:"note"`
}

// OrderResponse carries the WhatsApp deep link back to the buyer
type OrderResponse struct {
	WALink  string    `json:"wa_link"`
	Message string    `json:"message"`
	ClickID uuid.UUID `json:"click_id"`
	Listing *Listing  `json:"listing,omitempty"`
}
