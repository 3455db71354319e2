package repo

import (
	"errors"
	"time"

	"brewlocal/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderClickRepository handles order click data access
type OrderClickRepository struct {
	db *gorm.DB
}

// NewOrderClickRepository creates a new order click repository
func NewOrderClickRepository(db *gorm.DB) *OrderClickRepository {
	return &OrderClickRepository{db: db}
}

// Create records an order click
func (r *OrderClickRepository) Create(click *models.OrderClick) error {
	return r.db.Create(click).Error
}

// ListBySeller lists a seller's order clicks, newest first
func (r *OrderClickRepository) ListBySeller(sellerID uuid.UUID, limit, offset int) (*models.PaginationResult[models.OrderClick], error) {
	var clicks []models.OrderClick
	var total int64

	query := r.db.Model(&models.OrderClick{}).Where("seller_id = ?", sellerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	err := r.db.Preload("Listing").Preload("Buyer").
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&clicks).Error
	if err != nil {
		return nil, err
	}

	return paginate(clicks, total, limit, offset), nil
}

// CountBySellerSince counts a seller's order clicks since a point in time
func (r *OrderClickRepository) CountBySellerSince(sellerID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.OrderClick{}).
		Where("seller_id = ? AND created_at >= ?", sellerID, since).
		Count(&count).Error
	return count, err
}

// FavoriteRepository handles favorite data access
type FavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add bookmarks a seller for a user, ignoring duplicates
func (r *FavoriteRepository) Add(userID, sellerID uuid.UUID) error {
	favorite := models.Favorite{UserID: userID, SellerID: sellerID}
	err := r.db.Create(&favorite).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// Remove deletes a bookmark. Favorites are hard-deleted: a soft-deleted row
// would keep occupying the (user_id, seller_id) unique index and block
// re-favoriting the same seller.
func (r *FavoriteRepository) Remove(userID, sellerID uuid.UUID) error {
	return r.db.Unscoped().Where("user_id = ? AND seller_id = ?", userID, sellerID).Delete(&models.Favorite{}).Error
}

// ListByUser lists a user's bookmarked sellers
func (r *FavoriteRepository) ListByUser(userID uuid.UUID) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.Preload("Seller").Where("user_id = ?", userID).Order("created_at DESC").Find(&favorites).Error
	return favorites, err
}
