package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// StatsHandler exposes operational counters to admins
type StatsHandler struct {
	wsHandler *WebSocketHandler
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(wsHandler *WebSocketHandler) *StatsHandler {
	return &StatsHandler{wsHandler: wsHandler}
}

// AdminStats godoc
// @Summary System stats
// @Description Get operational counters, including live dashboard connections
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/stats [get]
// @Security BearerAuth
func (h *StatsHandler) AdminStats(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"connected_clients": h.wsHandler.GetConnectedClients(),
	})
}
