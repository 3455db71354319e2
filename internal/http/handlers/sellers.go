package handlers

import (
	"net/http"

	"brewlocal/internal/auth"
	"brewlocal/internal/repo"
	"brewlocal/pkg/models"
	"brewlocal/pkg/phone"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SellerHandler handles seller onboarding and admin management
type SellerHandler struct {
	sellerRepo  *repo.SellerRepository
	authService *auth.Service
}

// NewSellerHandler creates a new seller handler
func NewSellerHandler(sellerRepo *repo.SellerRepository, authService *auth.Service) *SellerHandler {
	return &SellerHandler{
		sellerRepo:  sellerRepo,
		authService: authService,
	}
}

// Create godoc
// @Summary Seller onboarding
// @Description Create a seller storefront for the authenticated user; requires a completed profile
// @Tags sellers
// @Accept json
// @Produce json
// @Param request body models.CreateSellerRequest true "Seller data"
// @Success 201 {object} models.Seller
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /sellers [post]
// @Security BearerAuth
func (h *SellerHandler) Create(c echo.Context) error {
	userID := c.Get("user_id").(uuid.UUID)

	var req models.CreateSellerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user not found"})
	}
	if !user.ProfileCompleted {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "complete your profile before creating a store"})
	}

	if existing, _ := h.sellerRepo.GetByOwner(userID); existing != nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": "account already has a store"})
	}

	if taken, err := h.sellerRepo.SlugExists(req.Slug); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to check slug"})
	} else if taken {
		return c.JSON(http.StatusConflict, map[string]string{"error": "slug is already taken"})
	}

	whatsapp, err := phone.Normalize(req.WhatsAppPhone)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid WhatsApp number"})
	}

	specialty := req.Specialty
	if specialty == "" {
		specialty = "coffee"
	}

	seller := &models.Seller{
		OwnerID:       userID,
		Slug:          req.Slug,
		Name:          req.Name,
		Bio:           req.Bio,
		Specialty:     specialty,
		WhatsAppPhone: whatsapp,
		Neighborhood:  req.Neighborhood,
		City:          req.City,
		IsActive:      true,
	}

	if err := h.sellerRepo.Create(seller); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create store"})
	}

	if err := h.authService.PromoteToSeller(userID); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, seller)
}

// AdminList godoc
// @Summary List all sellers
// @Description List every seller including inactive ones
// @Tags admin
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /admin/sellers [get]
// @Security BearerAuth
func (h *SellerHandler) AdminList(c echo.Context) error {
	limit, offset := parsePagination(c)

	result, err := h.sellerRepo.ListAll(limit, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch sellers"})
	}

	return c.JSON(http.StatusOK, result)
}

// AdminSetActive godoc
// @Summary Activate or deactivate seller
// @Description Toggle a seller's active flag
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Seller ID"
// @Param request body map[string]bool true "Active flag"
// @Success 200 {object} models.Seller
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/sellers/{id}/active [put]
// @Security BearerAuth
func (h *SellerHandler) AdminSetActive(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid seller ID"})
	}

	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	seller, err := h.sellerRepo.GetByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "seller not found"})
	}

	seller.IsActive = req.IsActive
	if err := h.sellerRepo.Update(seller); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update seller"})
	}

	return c.JSON(http.StatusOK, seller)
}
