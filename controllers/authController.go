package controllers

import (
	"HRAS/handlers"
	"HRAS/middlewares"
	"HRAS/models"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler *handlers.AuthHandler
	Admin   *handlers.AdminHandler
}

// NewAuthController creates a new AuthController with the given handlers.
func NewAuthController(authHandler *handlers.AuthHandler, adminHandler *handlers.AdminHandler) *AuthController {
	return &AuthController{
		Handler: authHandler,
		Admin:   adminHandler,
	}
}

// RegisterRoutes initializes all authentication and account-management routes.
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	// Public routes: No authentication required
	router.POST("/auth/register", ac.Handler.Register)
	router.POST("/auth/login", ac.Handler.Login)
	router.POST("/auth/refresh-token", ac.Handler.RefreshToken)
	router.POST("/auth/send-reset-code", ac.Handler.SendResetCode)
	router.POST("/auth/reset-password", ac.Handler.ResetPassword)

	// Protected routes: Requires a valid token
	authGroup := router.Group("/auth").Use(middlewares.TokenAuthMiddleware())
	{
		authGroup.GET("/user/profile", ac.Handler.Profile)
		authGroup.PUT("/user/update-profile", ac.Handler.UpdateProfile)
		authGroup.POST("/logoff", ac.Handler.Logoff)
	}

	// Admin routes: Requires a valid token and the admin role
	adminGroup := router.Group("/auth/admin").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleAdmin),
	)
	{
		adminGroup.GET("/users", ac.Admin.ListUsers)
		adminGroup.GET("/users/pending", ac.Admin.ListPendingUsers)
		adminGroup.GET("/staff", ac.Admin.ListStaff)
		adminGroup.POST("/users/:id/approve", ac.Admin.ApproveUser)
		adminGroup.POST("/users/:id/reject", ac.Admin.RejectUser)
		adminGroup.POST("/users/:id/activate", ac.Admin.ActivateUser)
		adminGroup.POST("/users/:id/deactivate", ac.Admin.DeactivateUser)
		adminGroup.PUT("/users/:id/hospital", ac.Admin.AssignHospital)
		adminGroup.PUT("/users/:id/role", ac.Admin.ChangeRole)
	}
}
