package handlers

import (
	"HRAS/models"
	"HRAS/services"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Users *services.UsersService
}

func NewAuthHandler(users *services.UsersService) *AuthHandler {
	return &AuthHandler{Users: users}
}

// Register handles new staff registration. Accounts start pending and must be
// approved by an admin before login works.
func (h *AuthHandler) Register(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.Users.Register(c.Request.Context(), &user); err != nil {
		c.JSON(400, gin.H{"error": fmt.Sprintf("Registration failed: %v", err)})
		return
	}

	c.JSON(201, gin.H{"message": "Registration received. An administrator will review your account."})
}

// Login authenticates the user and returns a token pair with the profile.
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	user, accessToken, refreshToken, err := h.Users.Authenticate(c.Request.Context(), credentials.Email, credentials.Password)
	if err != nil {
		c.JSON(401, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"user":         user,
	})
}

// RefreshToken exchanges a refresh token for a new access token.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var payload struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || payload.RefreshToken == "" {
		c.JSON(400, gin.H{"error": "Refresh token is required"})
		return
	}

	accessToken, err := h.Users.Refresh(c.Request.Context(), payload.RefreshToken)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid refresh token"})
		return
	}
	c.JSON(200, gin.H{"accessToken": accessToken})
}

// Profile returns the authenticated user's account.
func (h *AuthHandler) Profile(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	user, err := h.Users.GetByID(c.Request.Context(), actor.UserID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, user)
}

// UpdateProfile updates the authenticated user's own name and specialty.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var payload struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Specialty string `json:"specialty"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.Users.UpdateProfile(c.Request.Context(), actor.UserID, payload.FirstName, payload.LastName, payload.Specialty); err != nil {
		serviceError(c, err)
		return
	}

	user, err := h.Users.GetByID(c.Request.Context(), actor.UserID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, user)
}

// Logoff invalidates the server-side cache for the account. Tokens are
// stateless, so the client discards them.
func (h *AuthHandler) Logoff(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	user, err := h.Users.GetByID(c.Request.Context(), actor.UserID)
	if err == nil {
		_ = h.Users.InvalidateCache(c.Request.Context(), user.Email)
	}
	c.Status(http.StatusOK)
}

// SendResetCode emails a password reset code. The response is identical
// whether or not the account exists.
func (h *AuthHandler) SendResetCode(c *gin.Context) {
	var payload struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Email == "" {
		c.JSON(400, gin.H{"error": "Email is required"})
		return
	}

	if err := h.Users.SendPasswordResetCode(c.Request.Context(), payload.Email); err != nil {
		c.JSON(500, gin.H{"error": "Failed to send reset code"})
		return
	}
	c.JSON(200, gin.H{"message": "If the account exists, a reset code has been sent"})
}

// ResetPassword verifies the reset code and stores a new password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var payload struct {
		Email       string `json:"email"`
		ResetCode   string `json:"resetCode"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.Users.ResetPassword(c.Request.Context(), payload.Email, payload.ResetCode, payload.NewPassword); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Password has been reset"})
}
