package handlers

import (
	"brewlocal/internal/app"
	"brewlocal/internal/http/middleware"

	"github.com/labstack/echo/v4"
)

// SetupRoutes sets up all API routes
func SetupRoutes(api *echo.Group, services *app.Services) {
	wsHandler := NewWebSocketHandler(services.AuthService, services.SellerRepo)

	// Auth routes (no authentication required)
	authHandler := NewAuthHandler(services.AuthService, services.EmailService)
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)

	// Public catalog routes
	catalogHandler := NewCatalogHandler(services.CatalogService, services.SellerRepo, services.ListingRepo, services.CategoryRepo)
	catalog := api.Group("/catalog")
	catalog.GET("/listings", catalogHandler.ListListings)
	catalog.GET("/listings/:id", catalogHandler.GetListing)
	catalog.GET("/sellers", catalogHandler.ListSellers)
	catalog.GET("/sellers/:slug", catalogHandler.GetSeller)
	catalog.GET("/categories", catalogHandler.ListCategories)

	// Order clicks work anonymously; a token just attaches the buyer
	orderHandler := NewOrderHandler(services.OrderService, wsHandler)
	catalog.POST("/listings/:id/order", orderHandler.PlaceOrder, middleware.OptionalJWTAuth(services.AuthService))

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.JWTAuth(services.AuthService))

	profileAuth := protected.Group("/auth")
	profileAuth.GET("/me", authHandler.Me)
	profileAuth.PUT("/profile", authHandler.UpdateProfile)
	profileAuth.PUT("/change-password", authHandler.ChangePassword)

	// Buyer favorites
	favoriteHandler := NewFavoriteHandler(services.FavoriteRepo, services.SellerRepo)
	favorites := protected.Group("/favorites")
	favorites.GET("", favoriteHandler.List)
	favorites.POST("/:id", favoriteHandler.Add)
	favorites.DELETE("/:id", favoriteHandler.Remove)

	// Seller onboarding
	sellerHandler := NewSellerHandler(services.SellerRepo, services.AuthService)
	protected.POST("/sellers", sellerHandler.Create)

	// Seller dashboard (requires an active store)
	dashboardHandler := NewDashboardHandler(services.SellerRepo, services.ListingRepo, services.OrderClickRepo, services.StorageService, wsHandler)
	dashboard := protected.Group("/dashboard")
	dashboard.Use(middleware.RequireSeller(services.SellerRepo))
	dashboard.GET("/profile", dashboardHandler.GetProfile)
	dashboard.PUT("/profile", dashboardHandler.UpdateProfile)
	dashboard.POST("/profile/avatar", dashboardHandler.UploadAvatar)
	dashboard.GET("/hours", dashboardHandler.GetHours)
	dashboard.PUT("/hours", dashboardHandler.UpdateHours)
	dashboard.GET("/listings", dashboardHandler.ListListings)
	dashboard.POST("/listings", dashboardHandler.CreateListing)
	dashboard.GET("/listings/:id", dashboardHandler.GetListing)
	dashboard.PUT("/listings/:id", dashboardHandler.UpdateListing)
	dashboard.DELETE("/listings/:id", dashboardHandler.DeleteListing)
	dashboard.POST("/listings/:id/image", dashboardHandler.UploadListingImage)
	dashboard.GET("/orders", dashboardHandler.ListOrders)

	// Admin routes
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	admin.GET("/sellers", sellerHandler.AdminList)
	admin.PUT("/sellers/:id/active", sellerHandler.AdminSetActive)

	statsHandler := NewStatsHandler(wsHandler)
	admin.GET("/stats", statsHandler.AdminStats)

	categoryHandler := NewCategoryHandler(services.CategoryRepo)
	admin.POST("/categories", categoryHandler.Create)
	admin.PUT("/categories/:id", categoryHandler.Update)
	admin.DELETE("/categories/:id", categoryHandler.Delete)

	// WebSocket endpoint (handles authentication manually via query parameter)
	api.GET("/ws", wsHandler.HandleWebSocket)
}
