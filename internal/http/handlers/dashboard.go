package handlers

import (
	"net/http"
	"time"

	"brewlocal/internal/repo"
	"brewlocal/internal/services"
	"brewlocal/pkg/models"
	"brewlocal/pkg/phone"
	"brewlocal/pkg/schedule"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// DashboardHandler serves the seller dashboard: profile, business hours,
// menu management and the order feed.
type DashboardHandler struct {
	sellerRepo     *repo.SellerRepository
	listingRepo    *repo.ListingRepository
	clickRepo      *repo.OrderClickRepository
	storageService *services.StorageService
	wsHandler      *WebSocketHandler
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(sellerRepo *repo.SellerRepository, listingRepo *repo.ListingRepository, clickRepo *repo.OrderClickRepository, storageService *services.StorageService, wsHandler *WebSocketHandler) *DashboardHandler {
	return &DashboardHandler{
		sellerRepo:     sellerRepo,
		listingRepo:    listingRepo,
		clickRepo:      clickRepo,
		storageService: storageService,
		wsHandler:      wsHandler,
	}
}

func currentSeller(c echo.Context) *models.Seller {
	return c.Get("seller").(*models.Seller)
}

// GetProfile godoc
// @Summary Get seller profile
// @Description Get the caller's seller profile with parsed business hours
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /dashboard/profile [get]
// @Security BearerAuth
func (h *DashboardHandler) GetProfile(c echo.Context) error {
	seller := currentSeller(c)

	parsed := schedule.ParseText(seller.BusinessHours)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"seller":        seller,
		"week_schedule": parsed.Week,
		"hours_skipped": parsed.Skipped,
	})
}

// UpdateProfile godoc
// @Summary Update seller profile
// @Description Update the caller's seller profile; business hours are canonicalized through a parse/format round trip
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body models.UpdateSellerRequest true "Profile data"
// @Success 200 {object} models.Seller
// @Failure 400 {object} map[string]string
// @Router /dashboard/profile [put]
// @Security BearerAuth
func (h *DashboardHandler) UpdateProfile(c echo.Context) error {
	seller := currentSeller(c)

	var req models.UpdateSellerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	whatsapp, err := phone.Normalize(req.WhatsAppPhone)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid WhatsApp number"})
	}

	seller.Name = req.Name
	seller.Bio = req.Bio
	if req.Specialty != "" {
		seller.Specialty = req.Specialty
	}
	seller.WhatsAppPhone = whatsapp
	seller.Neighborhood = req.Neighborhood
	seller.City = req.City
	// Free-text hours are stored in canonical form; anything unparseable
	// is dropped here rather than surfacing later in the catalog.
	seller.BusinessHours = schedule.Format(schedule.Parse(req.BusinessHours))

	if err := h.sellerRepo.Update(seller); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update profile"})
	}

	return c.JSON(http.StatusOK, seller)
}

// GetHours godoc
// @Summary Get business hours
// @Description Get the structured week schedule, the canonical string and the editor's time label palette
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /dashboard/hours [get]
// @Security BearerAuth
func (h *DashboardHandler) GetHours(c echo.Context) error {
	seller := currentSeller(c)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"week_schedule":  schedule.Parse(seller.BusinessHours),
		"business_hours": seller.BusinessHours,
		"time_labels":    schedule.TimeLabels(),
	})
}

// UpdateHoursRequest carries a structured week schedule from the hours editor
type UpdateHoursRequest struct {
	WeekSchedule schedule.WeekSchedule `json:"week_schedule"`
}

// UpdateHours godoc
// @Summary Update business hours
// @Description Replace the seller's week schedule; the canonical string is produced by the formatter
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body UpdateHoursRequest true "Week schedule"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /dashboard/hours [put]
// @Security BearerAuth
func (h *DashboardHandler) UpdateHours(c echo.Context) error {
	seller := currentSeller(c)

	var req UpdateHoursRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	seller.BusinessHours = schedule.Format(req.WeekSchedule)

	if err := h.sellerRepo.Update(seller); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update hours"})
	}

	h.notifySeller(seller.ID, "hours_updated", map[string]string{"business_hours": seller.BusinessHours})

	return c.JSON(http.StatusOK, map[string]string{"business_hours": seller.BusinessHours})
}

// UploadAvatar godoc
// @Summary Upload store avatar
// @Description Upload the storefront avatar image
// @Tags dashboard
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} models.Seller
// @Failure 400 {object} map[string]string
// @Router /dashboard/profile/avatar [post]
// @Security BearerAuth
func (h *DashboardHandler) UploadAvatar(c echo.Context) error {
	seller := currentSeller(c)

	if h.storageService == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "file storage is not configured"})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "image file is required"})
	}

	url, key, err := h.storageService.UploadImage(file, "avatars/"+seller.ID.String())
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	oldKey := seller.AvatarS3Key
	seller.AvatarURL = url
	seller.AvatarS3Key = key

	if err := h.sellerRepo.Update(seller); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save profile"})
	}

	if oldKey != "" {
		if err := h.storageService.DeleteObject(oldKey); err != nil {
			log.Warn().Err(err).Str("key", oldKey).Msg("Failed to delete replaced avatar")
		}
	}

	return c.JSON(http.StatusOK, seller)
}

// ListListings godoc
// @Summary List menu items
// @Description List the caller's listings in menu order
// @Tags dashboard
// @Produce json
// @Success 200 {array} models.SwaggerListing
// @Failure 500 {object} map[string]string
// @Router /dashboard/listings [get]
// @Security BearerAuth
func (h *DashboardHandler) ListListings(c echo.Context) error {
	seller := currentSeller(c)

	listings, err := h.listingRepo.ListBySeller(seller.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch listings"})
	}

	return c.JSON(http.StatusOK, listings)
}

// CreateListing godoc
// @Summary Create menu item
// @Description Add a listing to the caller's menu
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body models.CreateListingRequest true "Listing data"
// @Success 201 {object} models.SwaggerListing
// @Failure 400 {object} map[string]string
// @Router /dashboard/listings [post]
// @Security BearerAuth
func (h *DashboardHandler) CreateListing(c echo.Context) error {
	seller := currentSeller(c)

	var req models.CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	listing := &models.Listing{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Tags:        req.Tags,
		IsAvailable: available,
		SortOrder:   req.SortOrder,
	}
	listing.SellerID = seller.ID

	if err := h.listingRepo.Create(listing); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create listing"})
	}

	h.notifySeller(seller.ID, "listing_created", listing)

	return c.JSON(http.StatusCreated, listing)
}

// GetListing godoc
// @Summary Get menu item
// @Description Get one of the caller's listings
// @Tags dashboard
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} models.SwaggerListing
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /dashboard/listings/{id} [get]
// @Security BearerAuth
func (h *DashboardHandler) GetListing(c echo.Context) error {
	seller := currentSeller(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid listing ID"})
	}

	listing, err := h.listingRepo.GetBySellerAndID(seller.ID, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "listing not found"})
	}

	return c.JSON(http.StatusOK, listing)
}

// UpdateListing godoc
// @Summary Update menu item
// @Description Update one of the caller's listings
// @Tags dashboard
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body models.UpdateListingRequest true "Listing data"
// @Success 200 {object} models.SwaggerListing
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /dashboard/listings/{id} [put]
// @Security BearerAuth
func (h *DashboardHandler) UpdateListing(c echo.Context) error {
	seller := currentSeller(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid listing ID"})
	}

	listing, err := h.listingRepo.GetBySellerAndID(seller.ID, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "listing not found"})
	}

	var req models.UpdateListingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	listing.CategoryID = req.CategoryID
	listing.Name = req.Name
	listing.Description = req.Description
	listing.PriceCents = req.PriceCents
	listing.Tags = req.Tags
	listing.SortOrder = req.SortOrder
	if req.IsAvailable != nil {
		listing.IsAvailable = *req.IsAvailable
	}

	if err := h.listingRepo.Update(listing); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update listing"})
	}

	h.notifySeller(seller.ID, "listing_updated", listing)

	return c.JSON(http.StatusOK, listing)
}

// DeleteListing godoc
// @Summary Delete menu item
// @Description Remove one of the caller's listings
// @Tags dashboard
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /dashboard/listings/{id} [delete]
// @Security BearerAuth
func (h *DashboardHandler) DeleteListing(c echo.Context) error {
	seller := currentSeller(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid listing ID"})
	}

	listing, err := h.listingRepo.GetBySellerAndID(seller.ID, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "listing not found"})
	}

	if err := h.listingRepo.Delete(seller.ID, id); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete listing"})
	}

	if h.storageService != nil && listing.ImageS3Key != "" {
		if err := h.storageService.DeleteObject(listing.ImageS3Key); err != nil {
			log.Warn().Err(err).Str("key", listing.ImageS3Key).Msg("Failed to delete listing image")
		}
	}

	h.notifySeller(seller.ID, "listing_deleted", map[string]string{"id": id.String()})

	return c.JSON(http.StatusOK, map[string]string{"message": "listing deleted"})
}

// UploadListingImage godoc
// @Summary Upload menu item image
// @Description Upload an image for one of the caller's listings
// @Tags dashboard
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Listing ID"
// @Param image formData file true "Image file"
// @Success 200 {object} models.SwaggerListing
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /dashboard/listings/{id}/image [post]
// @Security BearerAuth
func (h *DashboardHandler) UploadListingImage(c echo.Context) error {
	seller := currentSeller(c)

	if h.storageService == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "file storage is not configured"})
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid listing ID"})
	}

	listing, err := h.listingRepo.GetBySellerAndID(seller.ID, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "listing not found"})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "image file is required"})
	}

	url, key, err := h.storageService.UploadImage(file, "listings/"+seller.ID.String())
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	oldKey := listing.ImageS3Key
	listing.ImageURL = url
	listing.ImageS3Key = key

	if err := h.listingRepo.Update(listing); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save listing"})
	}

	if oldKey != "" {
		if err := h.storageService.DeleteObject(oldKey); err != nil {
			log.Warn().Err(err).Str("key", oldKey).Msg("Failed to delete replaced image")
		}
	}

	h.notifySeller(seller.ID, "listing_updated", listing)

	return c.JSON(http.StatusOK, listing)
}

// ListOrders godoc
// @Summary Order feed
// @Description List the caller's recorded order clicks, newest first
// @Tags dashboard
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /dashboard/orders [get]
// @Security BearerAuth
func (h *DashboardHandler) ListOrders(c echo.Context) error {
	seller := currentSeller(c)
	limit, offset := parsePagination(c)

	result, err := h.clickRepo.ListBySeller(seller.ID, limit, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch orders"})
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	lastWeek, err := h.clickRepo.CountBySellerSince(seller.ID, weekAgo)
	if err != nil {
		lastWeek = 0
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"orders":             result,
		"clicks_last_7_days": lastWeek,
	})
}

func (h *DashboardHandler) notifySeller(sellerID uuid.UUID, event string, data interface{}) {
	if h.wsHandler != nil {
		h.wsHandler.BroadcastToSeller(sellerID.String(), event, data)
	}
}
