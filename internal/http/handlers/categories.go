package handlers

import (
	"net/http"

	"brewlocal/internal/repo"
	"brewlocal/pkg/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CategoryHandler handles admin category management
type CategoryHandler struct {
	categoryRepo *repo.CategoryRepository
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryRepo *repo.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categoryRepo: categoryRepo}
}

// Create godoc
// @Summary Create category
// @Description Create a new catalog category
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.CreateCategoryRequest true "Category data"
// @Success 201 {object} models.Category
// @Failure 400 {object} map[string]string
// @Router /admin/categories [post]
// @Security BearerAuth
func (h *CategoryHandler) Create(c echo.Context) error {
	var req models.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	category := &models.Category{
		Name:      req.Name,
		Slug:      req.Slug,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}

	if err := h.categoryRepo.Create(category); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create category"})
	}

	return c.JSON(http.StatusCreated, category)
}

// Update godoc
// @Summary Update category
// @Description Update an existing category
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body models.CreateCategoryRequest true "Category data"
// @Success 200 {object} models.Category
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/categories/{id} [put]
// @Security BearerAuth
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid category ID"})
	}

	category, err := h.categoryRepo.GetByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "category not found"})
	}

	var req models.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	category.Name = req.Name
	category.Slug = req.Slug
	category.SortOrder = req.SortOrder

	if err := h.categoryRepo.Update(category); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update category"})
	}

	return c.JSON(http.StatusOK, category)
}

// Delete godoc
// @Summary Delete category
// @Description Soft-delete a category; its listings keep working uncategorized
// @Tags admin
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /admin/categories/{id} [delete]
// @Security BearerAuth
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid category ID"})
	}

	if err := h.categoryRepo.Delete(id); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete category"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "category deleted"})
}
