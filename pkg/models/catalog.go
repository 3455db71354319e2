package models

import (
	"github.com/google/uuid"
)

// Seller represents a merchant storefront on the marketplace
type Seller struct {
	BaseModel
	OwnerID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"owner_id"`
	Slug          string    `gorm:"uniqueIndex;not null" json:"slug" validate:"required"`
	Name          string    `gorm:"not null" json:"name" validate:"required"`
	Bio           string    `gorm:"type:text" json:"bio"`
	Specialty     string    `gorm:"default:'coffee';check:specialty IN ('coffee','matcha','both')" json:"specialty"`
	WhatsAppPhone string    `gorm:"not null" json:"whatsapp_phone"` // Normalized digits only
	Neighborhood  string    `json:"neighborhood"`
	City          string    `json:"city"`
	AvatarURL     string    `json:"avatar_url"`
	AvatarS3Key   string    `json:"-"`
	BusinessHours string    `json:"business_hours"` // Canonical schedule string, e.g. "Mon-Fri: 9:00 AM - 5:00 PM"
	IsActive      bool      `gorm:"default:true" json:"is_active"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

// Category represents a listing category (espresso, filter, matcha, ...)
type Category struct {
	BaseModel
	Name      string `gorm:"not null" json:"name" validate:"required"`
	Slug      string `gorm:"uniqueIndex;not null" json:"slug" validate:"required"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`
}

// Listing represents a menu item offered by a seller
type Listing struct {
	BaseSellerModel
	CategoryID  *uuid.UUID `gorm:"type:uuid;constraint:OnDelete:SET NULL" json:"category_id"`
	Name        string     `gorm:"not null" json:"name" validate:"required"`
	Description string     `gorm:"type:text" json:"description"`
	PriceCents  int64      `gorm:"not null" json:"price_cents" validate:"required,min=1"`
	Tags        string     `json:"tags"`
	ImageURL    string     `json:"image_url"`
	ImageS3Key  string     `json:"-"`
	IsAvailable bool       `gorm:"default:true" json:"is_available"`
	SortOrder   int        `gorm:"default:0" json:"sort_order"`

	Seller   *Seller   `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// CreateSellerRequest represents seller onboarding data
type CreateSellerRequest struct {
	Slug          string `json:"slug" validate:"required,min=3"`
	Name          string `json:"name" validate:"required"`
	Bio           string `json:"bio"`
	Specialty     string `json:"specialty" validate:"omitempty,oneof=coffee matcha both"`
	WhatsAppPhone string `json:"whatsapp_phone" validate:"required"`
	Neighborhood  string `json:"neighborhood"`
	City          string `json:"city"`
}

// UpdateSellerRequest represents seller profile updates from the dashboard
type UpdateSellerRequest struct {
	Name          string `json:"name" validate:"required"`
	Bio           string `json:"bio"`
	Specialty     string `json:"specialty" validate:"omitempty,oneof=coffee matcha both"`
	WhatsAppPhone string `json:"whatsapp_phone" validate:"required"`
	Neighborhood  string `json:"neighborhood"`
	City          string `json:"city"`
	BusinessHours string `json:"business_hours"`
}

// CreateListingRequest represents new menu item data
type CreateListingRequest struct {
	CategoryID  *uuid.UUID `json:"category_id"`
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	PriceCents  int64      `json:"price_cents" validate:"required,min=1"`
	Tags        string     `json:"tags"`
	IsAvailable *bool      `json:"is_available"`
	SortOrder   int        `json:"sort_order"`
}

// UpdateListingRequest represents menu item updates
type UpdateListingRequest struct {
	CategoryID  *uuid.UUID `json:"category_id"`
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	PriceCents  int64      `json:"price_cents" validate:"required,min=1"`
	Tags        string     `json:"tags"`
	IsAvailable *bool      `json:"is_available"`
	SortOrder   int        `json:"sort_order"`
}

// CreateCategoryRequest represents new category data
type CreateCategoryRequest struct {
	Name      string `json:"name" validate:"required"`
	Slug      string `json:"slug" validate:"required"`
	SortOrder int    `json:"sort_order"`
}
