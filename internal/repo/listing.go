package repo

import (
	"brewlocal/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListingRepository handles listing data access
type ListingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a new listing repository
func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// GetByID gets a listing by ID
func (r *ListingRepository) GetByID(id uuid.UUID) (*models.Listing, error) {
	var listing models.Listing
	err := r.db.Preload("Seller").Preload("Category").Where("id = ?", id).First(&listing).Error
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// GetBySellerAndID gets a listing scoped to a seller, for dashboard access
func (r *ListingRepository) GetBySellerAndID(sellerID, id uuid.UUID) (*models.Listing, error) {
	var listing models.Listing
	err := r.db.Where("seller_id = ? AND id = ?", sellerID, id).First(&listing).Error
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// Create creates a new listing
func (r *ListingRepository) Create(listing *models.Listing) error {
	return r.db.Create(listing).Error
}

// Update updates a listing
func (r *ListingRepository) Update(listing *models.Listing) error {
	return r.db.Save(listing).Error
}

// Delete soft-deletes a listing
func (r *ListingRepository) Delete(sellerID, id uuid.UUID) error {
	return r.db.Where("seller_id = ? AND id = ?", sellerID, id).Delete(&models.Listing{}).Error
}

// ListBySeller lists a seller's listings in menu order, for the dashboard
func (r *ListingRepository) ListBySeller(sellerID uuid.UUID) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.Preload("Category").
		Where("seller_id = ?", sellerID).
		Order("sort_order ASC, name ASC").
		Find(&listings).Error
	return listings, err
}

// ListAvailable loads every available listing of active sellers, with seller
// and category preloaded. Catalog filtering and sorting happen in
// services.CatalogService over this in-memory set.
func (r *ListingRepository) ListAvailable() ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.Preload("Seller").Preload("Category").
		Joins("JOIN sellers ON sellers.id = listings.seller_id AND sellers.is_active = true AND sellers.deleted_at IS NULL").
		Where("listings.is_available = true").
		Order("listings.created_at DESC").
		Find(&listings).Error
	return listings, err
}

// SearchAvailable narrows available listings with the listings full-text
// index before the in-memory pass, for large catalogs
func (r *ListingRepository) SearchAvailable(query string) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.Preload("Seller").Preload("Category").
		Joins("JOIN sellers ON sellers.id = listings.seller_id AND sellers.is_active = true AND sellers.deleted_at IS NULL").
		Where("listings.is_available = true").
		Where("to_tsvector('simple', coalesce(listings.name, '') || ' ' || coalesce(listings.description, '') || ' ' || coalesce(listings.tags, '')) @@ plainto_tsquery('simple', ?)", query).
		Order("listings.created_at DESC").
		Find(&listings).Error
	return listings, err
}
