package app

import (
	"fmt"

	"brewlocal/internal/auth"
	"brewlocal/internal/repo"
	"brewlocal/internal/services"

	"gorm.io/gorm"
)

// Services holds all application services
type Services struct {
	DB             *gorm.DB
	AuthService    *auth.Service
	UserRepo       *repo.UserRepository
	SellerRepo     *repo.SellerRepository
	ListingRepo    *repo.ListingRepository
	CategoryRepo   *repo.CategoryRepository
	OrderClickRepo *repo.OrderClickRepository
	FavoriteRepo   *repo.FavoriteRepository
	CatalogService *services.CatalogService
	OrderService   *services.OrderService
	EmailService   *services.EmailService
	StorageService *services.StorageService
}

// NewServices creates a new services container
func NewServices(db *gorm.DB) *Services {
	userRepo := repo.NewUserRepository(db)
	sellerRepo := repo.NewSellerRepository(db)
	listingRepo := repo.NewListingRepository(db)
	categoryRepo := repo.NewCategoryRepository(db)
	orderClickRepo := repo.NewOrderClickRepository(db)
	favoriteRepo := repo.NewFavoriteRepository(db)

	authService := auth.NewService(userRepo)
	catalogService := services.NewCatalogService(listingRepo)
	orderService := services.NewOrderService(listingRepo, orderClickRepo)

	// Email is optional; password reset links just won't be delivered without it
	emailService, err := services.NewEmailService()
	if err != nil {
		fmt.Printf("Warning: Failed to initialize email service: %v\n", err)
	}

	// Storage is optional; image uploads are rejected without it
	storageService, err := services.NewStorageService()
	if err != nil {
		fmt.Printf("Warning: Failed to initialize storage service: %v\n", err)
	}

	return &Services{
		DB:             db,
		AuthService:    authService,
		UserRepo:       userRepo,
		SellerRepo:     sellerRepo,
		ListingRepo:    listingRepo,
		CategoryRepo:   categoryRepo,
		OrderClickRepo: orderClickRepo,
		FavoriteRepo:   favoriteRepo,
		CatalogService: catalogService,
		OrderService:   orderService,
		EmailService:   emailService,
		StorageService: storageService,
	}
}
