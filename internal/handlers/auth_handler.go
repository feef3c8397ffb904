package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/hirehub/internal/auth"
	"github.com/justsurfingit/hirehub/internal/dtos"
	"github.com/justsurfingit/hirehub/internal/services"
)

type AuthHandler struct {
	Auth *services.AuthService
	log  *slog.Logger
}

func NewAuthHandler(authService *services.AuthService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{Auth: authService, log: log}
}

// Register is POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	account, token, err := h.Auth.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, dtos.AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    dtos.Summary(account),
	})
}

// Login is POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	account, token, err := h.Auth.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dtos.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    dtos.Summary(account),
	})
}

// GetProfile is GET /api/auth/profile (and /api/auth/me).
func (h *AuthHandler) GetProfile(c *gin.Context) {
	account, err := h.Auth.GetProfile(c.Request.Context(), c.GetString(auth.ContextAccountID))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": account})
}

// UpdateProfile is PUT /api/auth/profile.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req dtos.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	account, err := h.Auth.UpdateProfile(c.Request.Context(), c.GetString(auth.ContextAccountID), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": account})
}
