package handlers

import (
	"errors"
	"net/http"

	"github.com/Aysaleh/player-app/internal/services"
	"github.com/Aysaleh/player-app/internal/ws"

	"github.com/gin-gonic/gin"
)

type PlayerHandler struct {
	playerService *services.PlayerService
	hub           *ws.Hub
}

func NewPlayerHandler(playerService *services.PlayerService, hub *ws.Hub) *PlayerHandler {
	return &PlayerHandler{playerService: playerService, hub: hub}
}

type CreatePlayerRequest struct {
	FullName  string `json:"full_name" binding:"required" example:"Jane Doe"`
	Birthdate string `json:"birthdate" example:"2004-05-17"`
	Position  string `json:"position" example:"midfielder"`
}

// ListPlayers godoc
// @Summary      List players
// @Description  All players, most recently created first
// @Tags         players
// @Produce      json
// @Success      200 {array} Player
// @Failure      401 {object} ErrorResponse
// @Router       /api/players [get]
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	players, err := h.playerService.ListPlayers()
	if err != nil {
		serverError(c, "list players", err)
		return
	}

	c.JSON(http.StatusOK, players)
}

// CreatePlayer godoc
// @Summary      Create a player
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        request body CreatePlayerRequest true "Player data"
// @Success      201 {object} Player
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/players [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	player, err := h.playerService.CreatePlayer(req.FullName, req.Birthdate, req.Position)
	if err != nil {
		if errors.Is(err, services.ErrFullNameRequired) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		serverError(c, "create player", err)
		return
	}

	h.hub.Broadcast(ws.Event{Type: "players_changed"})
	c.JSON(http.StatusCreated, player)
}

// DeletePlayer godoc
// @Summary      Delete a player
// @Description  Delete a player and all of its evaluations
// @Tags         players
// @Produce      json
// @Param        id path int true "Player ID"
// @Success      200 {object} OKResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/players/{id} [delete]
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	id, ok := playerIDParam(c)
	if !ok {
		return
	}

	if err := h.playerService.DeletePlayer(id); err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		serverError(c, "delete player", err)
		return
	}

	h.hub.Broadcast(ws.Event{Type: "players_changed"})
	h.hub.Broadcast(ws.Event{Type: "evaluations_changed", Data: map[string]uint{"player_id": id}})
	c.JSON(http.StatusOK, OKResponse{OK: true})
}
