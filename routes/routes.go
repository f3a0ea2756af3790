package routes

import (
	"HRAS/cache"
	"HRAS/config"
	"HRAS/controllers"
	"HRAS/handlers"
	"HRAS/middlewares"
	"HRAS/repositories"
	"HRAS/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server. It also
// returns the assignment service so the scheduler can run retry passes.
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) (http.Handler, *services.AssignmentService) {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://hras.example.com"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, cache)
	hospitalRepo := repositories.NewHospitalRepository(cache)
	patientRepo := repositories.NewPatientRepository(cache)
	resourceRepo := repositories.NewResourceRepository(cache)
	assignmentRepo := repositories.NewAssignmentRepository(cache)
	shiftRepo := repositories.NewShiftRepository()
	noteRepo := repositories.NewNoteRepository()
	labReportRepo := repositories.NewLabReportRepository()
	clinicalRepo := repositories.NewClinicalRepository()
	aiRepo := repositories.NewAIRepository()

	// Initialize services
	var suggester services.Suggester
	if config.AIEnabled() {
		suggester = services.NewGeminiClient(config.GeminiAPIKey)
	}
	aiService := services.NewAIService(suggester, aiRepo)
	assignmentService := services.NewAssignmentService(patientRepo, assignmentRepo, userRepo)
	patientService := services.NewPatientService(patientRepo, hospitalRepo, assignmentRepo, assignmentService, aiService)
	usersService := services.NewUsersService(userRepo)
	hospitalService := services.NewHospitalService(hospitalRepo)
	resourceService := services.NewResourceService(resourceRepo, hospitalRepo)
	shiftService := services.NewShiftService(shiftRepo, userRepo)
	noteService := services.NewNoteService(noteRepo, patientService)
	labReportService := services.NewLabReportService(labReportRepo, patientService)
	clinicalService := services.NewClinicalService(clinicalRepo, patientService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(usersService)
	adminHandler := handlers.NewAdminHandler(usersService)
	hospitalHandler := handlers.NewHospitalHandler(hospitalService)
	patientHandler := handlers.NewPatientHandler(patientService)
	clinicalHandler := handlers.NewClinicalHandler(clinicalService)
	noteHandler := handlers.NewNoteHandler(noteService)
	resourceHandler := handlers.NewResourceHandler(resourceService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	labReportHandler := handlers.NewLabReportHandler(labReportService)
	aiHandler := handlers.NewAIHandler(aiService)
	analyticsHandler := handlers.NewAnalyticsHandler(assignmentService)

	// Register routes
	controllers.SetupCoreRoutes(
		router,
		hospitalHandler,
		patientHandler,
		clinicalHandler,
		noteHandler,
		resourceHandler,
		assignmentHandler,
		shiftHandler,
		labReportHandler,
		aiHandler,
		analyticsHandler,
	)

	authController := controllers.NewAuthController(authHandler, adminHandler)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router, assignmentService
}
