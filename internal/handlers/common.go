package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/Aysaleh/player-app/internal/models"
	"github.com/Aysaleh/player-app/internal/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}

// Type aliases so swag can resolve models in annotations.
type Player = models.Player
type Evaluation = models.Evaluation
type DashboardStats = services.DashboardStats

// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200 {object} OKResponse
// @Router       /api/health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, OKResponse{OK: true})
}

// serverError logs the real cause and answers with a generic message;
// internal details never reach the client.
func serverError(c *gin.Context, op string, err error) {
	log.Printf("%s: %v", op, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "server error"})
}

func playerIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid player id"})
		return 0, false
	}
	return uint(id), true
}

// OptionalInt decodes an integer that browser forms may submit as a number,
// a numeric string, an empty string, or null. Empty string and null both
// mean "no value".
type OptionalInt struct {
	Value *int
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		o.Value = nil
		return nil
	}

	if len(s) > 0 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
		if s == "" {
			o.Value = nil
			return nil
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("score must be an integer, got %q", s)
	}
	o.Value = &n
	return nil
}
