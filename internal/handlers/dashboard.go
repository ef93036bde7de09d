package handlers

import (
	"net/http"

	"github.com/Aysaleh/player-app/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	playerService *services.PlayerService
}

func NewDashboardHandler(playerService *services.PlayerService) *DashboardHandler {
	return &DashboardHandler{playerService: playerService}
}

// GetDashboard godoc
// @Summary      Dashboard statistics
// @Description  Player count, evaluation count and average score over scored evaluations (null when none)
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} DashboardStats
// @Failure      401 {object} ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	stats, err := h.playerService.DashboardStats()
	if err != nil {
		serverError(c, "dashboard", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
