package handlers

import (
	"net/http"
	"strconv"
	"time"

	"brewlocal/internal/repo"
	"brewlocal/internal/services"
	"brewlocal/pkg/models"
	"brewlocal/pkg/schedule"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the public browse surface
type CatalogHandler struct {
	catalogService *services.CatalogService
	sellerRepo     *repo.SellerRepository
	listingRepo    *repo.ListingRepository
	categoryRepo   *repo.CategoryRepository
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *services.CatalogService, sellerRepo *repo.SellerRepository, listingRepo *repo.ListingRepository, categoryRepo *repo.CategoryRepository) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		sellerRepo:     sellerRepo,
		listingRepo:    listingRepo,
		categoryRepo:   categoryRepo,
	}
}

// SellerProfile is the public seller payload: the stored profile plus the
// parsed week schedule and the open-now flag.
type SellerProfile struct {
	models.Seller
	WeekSchedule schedule.WeekSchedule `json:"week_schedule"`
	OpenNow      bool                  `json:"open_now"`
}

// ListListings godoc
// @Summary Browse listings
// @Description List available listings with filtering, sorting and search
// @Tags catalog
// @Produce json
// @Param q query string false "Search query"
// @Param category query string false "Category slug"
// @Param seller query string false "Seller slug"
// @Param max_price query int false "Maximum price in cents"
// @Param open_now query bool false "Only sellers currently open"
// @Param sort query string false "Sort order" Enums(newest, price_asc, price_desc, name)
// @Success 200 {array} models.SwaggerListing
// @Failure 500 {object} map[string]string
// @Router /catalog/listings [get]
func (h *CatalogHandler) ListListings(c echo.Context) error {
	maxPrice, _ := strconv.ParseInt(c.QueryParam("max_price"), 10, 64)
	openNow, _ := strconv.ParseBool(c.QueryParam("open_now"))

	filter := services.ListingFilter{
		Query:         c.QueryParam("q"),
		CategorySlug:  c.QueryParam("category"),
		SellerSlug:    c.QueryParam("seller"),
		MaxPriceCents: maxPrice,
		OpenNow:       openNow,
		Sort:          c.QueryParam("sort"),
	}

	listings, err := h.catalogService.Search(filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch listings"})
	}

	return c.JSON(http.StatusOK, listings)
}

// GetListing godoc
// @Summary Get listing
// @Description Get a single listing with its seller and category
// @Tags catalog
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} models.SwaggerListing
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /catalog/listings/{id} [get]
func (h *CatalogHandler) GetListing(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid listing ID"})
	}

	listing, err := h.listingRepo.GetByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "listing not found"})
	}

	if !listing.IsAvailable || listing.Seller == nil || !listing.Seller.IsActive {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "listing not found"})
	}

	return c.JSON(http.StatusOK, listing)
}

// ListSellers godoc
// @Summary Browse sellers
// @Description List active sellers, optionally filtered by city
// @Tags catalog
// @Produce json
// @Param city query string false "City filter"
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /catalog/sellers [get]
func (h *CatalogHandler) ListSellers(c echo.Context) error {
	limit, offset := parsePagination(c)

	result, err := h.sellerRepo.ListActive(c.QueryParam("city"), limit, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch sellers"})
	}

	return c.JSON(http.StatusOK, result)
}

// GetSeller godoc
// @Summary Get seller profile
// @Description Get a seller's public profile, menu, parsed business hours and open-now state
// @Tags catalog
// @Produce json
// @Param slug path string true "Seller slug"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /catalog/sellers/{slug} [get]
func (h *CatalogHandler) GetSeller(c echo.Context) error {
	seller, err := h.sellerRepo.GetBySlug(c.Param("slug"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "seller not found"})
	}

	week := schedule.Parse(seller.BusinessHours)

	listings, err := h.listingRepo.ListBySeller(seller.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch menu"})
	}

	// The public menu hides paused items; the dashboard shows everything
	menu := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if l.IsAvailable {
			menu = append(menu, l)
		}
	}

	profile := SellerProfile{
		Seller:       *seller,
		WeekSchedule: week,
		OpenNow:      week.OpenAt(time.Now()),
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"seller":   profile,
		"listings": menu,
	})
}

// ListCategories godoc
// @Summary List categories
// @Description Get all active categories ordered by sort_order
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} map[string]string
// @Router /catalog/categories [get]
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryRepo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch categories"})
	}

	return c.JSON(http.StatusOK, categories)
}

// parsePagination reads page/per_page query params into limit and offset
func parsePagination(c echo.Context) (limit, offset int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}

	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))
	if perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}

	return perPage, (page - 1) * perPage
}
