package repo

import (
	"brewlocal/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SellerRepository handles seller data access
type SellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository creates a new seller repository
func NewSellerRepository(db *gorm.DB) *SellerRepository {
	return &SellerRepository{db: db}
}

// GetByID gets a seller by ID
func (r *SellerRepository) GetByID(id uuid.UUID) (*models.Seller, error) {
	var seller models.Seller
	err := r.db.Where("id = ?", id).First(&seller).Error
	if err != nil {
		return nil, err
	}
	return &seller, nil
}

// GetBySlug gets an active seller by its public slug
func (r *SellerRepository) GetBySlug(slug string) (*models.Seller, error) {
	var seller models.Seller
	err := r.db.Where("slug = ? AND is_active = true", slug).First(&seller).Error
	if err != nil {
		return nil, err
	}
	return &seller, nil
}

// GetByOwner gets the seller owned by a user
func (r *SellerRepository) GetByOwner(ownerID uuid.UUID) (*models.Seller, error) {
	var seller models.Seller
	err := r.db.Where("owner_id = ?", ownerID).First(&seller).Error
	if err != nil {
		return nil, err
	}
	return &seller, nil
}

// SlugExists reports whether a slug is already taken
func (r *SellerRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Seller{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// Create creates a new seller
func (r *SellerRepository) Create(seller *models.Seller) error {
	return r.db.Create(seller).Error
}

// Update updates a seller
func (r *SellerRepository) Update(seller *models.Seller) error {
	return r.db.Save(seller).Error
}

// ListActive lists active sellers with pagination
func (r *SellerRepository) ListActive(city string, limit, offset int) (*models.PaginationResult[models.Seller], error) {
	var sellers []models.Seller
	var total int64

	query := r.db.Model(&models.Seller{}).Where("is_active = true")
	if city != "" {
		query = query.Where("LOWER(city) = LOWER(?)", city)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&sellers).Error
	if err != nil {
		return nil, err
	}

	return paginate(sellers, total, limit, offset), nil
}

// ListAll lists every seller regardless of status, for admin use
func (r *SellerRepository) ListAll(limit, offset int) (*models.PaginationResult[models.Seller], error) {
	var sellers []models.Seller
	var total int64

	if err := r.db.Model(&models.Seller{}).Count(&total).Error; err != nil {
		return nil, err
	}

	err := r.db.Preload("Owner").Order("created_at DESC").Limit(limit).Offset(offset).Find(&sellers).Error
	if err != nil {
		return nil, err
	}

	return paginate(sellers, total, limit, offset), nil
}

// paginate wraps a result page in the shared pagination envelope
func paginate[T any](data []T, total int64, limit, offset int) *models.PaginationResult[T] {
	if limit <= 0 {
		limit = 20
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &models.PaginationResult[T]{
		Data:       data,
		Total:      total,
		Page:       offset/limit + 1,
		PerPage:    limit,
		TotalPages: totalPages,
	}
}
