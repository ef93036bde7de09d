package handlers

import (
	"errors"
	"net/http"

	"github.com/Aysaleh/player-app/internal/services"
	"github.com/Aysaleh/player-app/internal/ws"

	"github.com/gin-gonic/gin"
)

type EvaluationHandler struct {
	playerService *services.PlayerService
	hub           *ws.Hub
}

func NewEvaluationHandler(playerService *services.PlayerService, hub *ws.Hub) *EvaluationHandler {
	return &EvaluationHandler{playerService: playerService, hub: hub}
}

type CreateEvaluationRequest struct {
	EvaluatorName string      `json:"evaluator_name" example:"Coach Kim"`
	Date          string      `json:"date" binding:"required" example:"2024-01-01"`
	Notes         string      `json:"notes" example:"strong left foot"`
	Score         OptionalInt `json:"score" swaggertype:"integer"`
}

// ListEvaluations godoc
// @Summary      List a player's evaluations
// @Description  Ordered by date descending, then id descending
// @Tags         evaluations
// @Produce      json
// @Param        id path int true "Player ID"
// @Success      200 {array} Evaluation
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/players/{id}/evaluations [get]
func (h *EvaluationHandler) ListEvaluations(c *gin.Context) {
	playerID, ok := playerIDParam(c)
	if !ok {
		return
	}

	evals, err := h.playerService.ListEvaluations(playerID)
	if err != nil {
		serverError(c, "list evaluations", err)
		return
	}

	c.JSON(http.StatusOK, evals)
}

// CreateEvaluation godoc
// @Summary      Create an evaluation
// @Tags         evaluations
// @Accept       json
// @Produce      json
// @Param        id path int true "Player ID"
// @Param        request body CreateEvaluationRequest true "Evaluation data"
// @Success      201 {object} Evaluation
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/players/{id}/evaluations [post]
func (h *EvaluationHandler) CreateEvaluation(c *gin.Context) {
	playerID, ok := playerIDParam(c)
	if !ok {
		return
	}

	var req CreateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	eval, err := h.playerService.CreateEvaluation(playerID, req.EvaluatorName, req.Date, req.Notes, req.Score.Value)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		serverError(c, "create evaluation", err)
		return
	}

	h.hub.Broadcast(ws.Event{Type: "evaluations_changed", Data: map[string]uint{"player_id": playerID}})
	c.JSON(http.StatusCreated, eval)
}
