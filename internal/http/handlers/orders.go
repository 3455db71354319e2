package handlers

import (
	"net/http"

	"brewlocal/internal/services"
	"brewlocal/pkg/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// OrderHandler handles WhatsApp order clicks
type OrderHandler struct {
	orderService *services.OrderService
	wsHandler    *WebSocketHandler
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *services.OrderService, wsHandler *WebSocketHandler) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		wsHandler:    wsHandler,
	}
}

// PlaceOrder godoc
// @Summary Order via WhatsApp
// @Description Build the WhatsApp deep link for a listing and record the order click
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body models.OrderRequest false "Order details"
// @Success 200 {object} models.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /catalog/listings/{id}/order [post]
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid listing ID"})
	}

	var req models.OrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	// Attach the buyer when a valid token was sent
	var buyerID *uuid.UUID
	if id, ok := c.Get("user_id").(uuid.UUID); ok {
		buyerID = &id
	}

	response, err := h.orderService.PlaceOrder(listingID, buyerID, req)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}

	// Nudge the seller's dashboard feed
	if h.wsHandler != nil && response.Listing != nil {
		h.wsHandler.BroadcastToSeller(response.Listing.SellerID.String(), "order_click", map[string]interface{}{
			"listing_id":   response.Listing.ID,
			"listing_name": response.Listing.Name,
			"message":      response.Message,
		})
	}

	return c.JSON(http.StatusOK, response)
}
