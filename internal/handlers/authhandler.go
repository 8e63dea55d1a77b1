package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erickazee/jobtrack/internal/auth"
	"github.com/erickazee/jobtrack/internal/dtos"
	"github.com/erickazee/jobtrack/internal/services"
)

type AuthHandler struct {
	Users  *services.UserService
	Tokens *auth.TokenService
}

func NewAuthHandler(users *services.UserService, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{
		Users:  users,
		Tokens: tokens,
	}
}

// Signup is POST /auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dtos.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	user, err := h.Users.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusCreated, user.ID)
}

// Login is POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	user, err := h.Users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusOK, user.ID)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, userID string) {
	token, err := h.Tokens.Issue(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue session token"})
		return
	}
	c.JSON(status, dtos.TokenResponse{Token: token, UserID: userID})
}
