package handlers

import (
	"net/http"

	"brewlocal/internal/repo"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// FavoriteHandler handles buyer favorites
type FavoriteHandler struct {
	favoriteRepo *repo.FavoriteRepository
	sellerRepo   *repo.SellerRepository
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(favoriteRepo *repo.FavoriteRepository, sellerRepo *repo.SellerRepository) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteRepo: favoriteRepo,
		sellerRepo:   sellerRepo,
	}
}

// List godoc
// @Summary List favorites
// @Description List the sellers the authenticated user has favorited
// @Tags favorites
// @Produce json
// @Success 200 {array} models.Favorite
// @Failure 500 {object} map[string]string
// @Router /favorites [get]
// @Security BearerAuth
func (h *FavoriteHandler) List(c echo.Context) error {
	userID := c.Get("user_id").(uuid.UUID)

	favorites, err := h.favoriteRepo.ListByUser(userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch favorites"})
	}

	return c.JSON(http.StatusOK, favorites)
}

// Add godoc
// @Summary Favorite a seller
// @Description Add a seller to the authenticated user's favorites
// @Tags favorites
// @Produce json
// @Param id path string true "Seller ID"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /favorites/{id} [post]
// @Security BearerAuth
func (h *FavoriteHandler) Add(c echo.Context) error {
	userID := c.Get("user_id").(uuid.UUID)

	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid seller ID"})
	}

	if _, err := h.sellerRepo.GetByID(sellerID); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "seller not found"})
	}

	if err := h.favoriteRepo.Add(userID, sellerID); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save favorite"})
	}

	return c.JSON(http.StatusCreated, map[string]string{"message": "seller favorited"})
}

// Remove godoc
// @Summary Unfavorite a seller
// @Description Remove a seller from the authenticated user's favorites
// @Tags favorites
// @Produce json
// @Param id path string true "Seller ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /favorites/{id} [delete]
// @Security BearerAuth
func (h *FavoriteHandler) Remove(c echo.Context) error {
	userID := c.Get("user_id").(uuid.UUID)

	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid seller ID"})
	}

	if err := h.favoriteRepo.Remove(userID, sellerID); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to remove favorite"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "favorite removed"})
}
