package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Aysaleh/player-app/internal/middleware"
	"github.com/Aysaleh/player-app/internal/models"
	"github.com/Aysaleh/player-app/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required" example:"alice@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret1"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"secret1"`
}

type UserInfo struct {
	ID    uint   `json:"id" example:"1"`
	Email string `json:"email" example:"alice@example.com"`
}

type AuthResponse struct {
	OK   bool     `json:"ok" example:"true"`
	User UserInfo `json:"user"`
}

type MeResponse struct {
	OK   bool        `json:"ok" example:"true"`
	User models.User `json:"user"`
}

const sessionMaxAge = int(services.TokenLifetime / time.Second)

func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, sessionMaxAge, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
}

// Register godoc
// @Summary      Register a new account
// @Description  Create an account and set the session cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      200 {object} AuthResponse
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, token, err := h.authService.Register(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
			return
		}
		serverError(c, "register", err)
		return
	}

	setSessionCookie(c, token)
	c.JSON(http.StatusOK, AuthResponse{OK: true, User: UserInfo{ID: user.ID, Email: user.Email}})
}

// Login godoc
// @Summary      Log in
// @Description  Verify credentials and set the session cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login data"
// @Success      200 {object} AuthResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
			return
		}
		serverError(c, "login", err)
		return
	}

	setSessionCookie(c, token)
	c.JSON(http.StatusOK, AuthResponse{OK: true, User: UserInfo{ID: user.ID, Email: user.Email}})
}

// Logout godoc
// @Summary      Log out
// @Description  Clear the session cookie; tokens are stateless so there is nothing to revoke server-side
// @Tags         auth
// @Produce      json
// @Success      200 {object} OKResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	clearSessionCookie(c)
	c.JSON(http.StatusOK, OKResponse{OK: true})
}

// Me godoc
// @Summary      Current account
// @Description  Return the account behind the presented session token
// @Tags         auth
// @Produce      json
// @Success      200 {object} MeResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint("user_id")

	user, err := h.authService.GetUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not logged in"})
			return
		}
		serverError(c, "me", err)
		return
	}

	c.JSON(http.StatusOK, MeResponse{OK: true, User: *user})
}
