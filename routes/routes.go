package routes

import (
	"MedCenter/cache"
	"MedCenter/config"
	"MedCenter/controllers"
	"MedCenter/handlers"
	"MedCenter/middlewares"
	"MedCenter/repositories"
	"MedCenter/services"
	"MedCenter/storage"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB, store *storage.MediaStore) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://www.example.com", "https://example-dev.com"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15, // 15 requests per second
		Burst:             30, // Burst of 30
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers
	territoryRepo := repositories.NewTerritoryRepository(cache)
	profileRepo := repositories.NewProfileRepository(cache)
	companyRepo := repositories.NewCompanyRepository(cache)
	catalogRepo := repositories.NewCatalogRepository(cache)
	caseRepo := repositories.NewCaseRepository(cache)
	reportRepo := repositories.NewReportRepository(cache, store)
	userRepo := repositories.NewUserRepository(db, cache)

	territoryService := services.NewTerritoryService(territoryRepo)
	profileService := services.NewProfileService(profileRepo)
	companyService := services.NewCompanyService(companyRepo)
	catalogService := services.NewCatalogService(catalogRepo)
	caseService := services.NewCaseService(caseRepo)
	reportService := services.NewReportService(reportRepo)
	userService := services.NewUserService(userRepo)

	territoryHandler := handlers.NewTerritoryHandler(territoryService, profileService)
	profileHandler := handlers.NewProfileHandler(profileService)
	companyHandler := handlers.NewCompanyHandler(companyService, profileService)
	catalogHandler := handlers.NewCatalogHandler(catalogService, profileService)
	caseHandler := handlers.NewCaseHandler(caseService, profileService)
	reportHandler := handlers.NewReportHandler(reportService, profileService)
	authHandler := handlers.NewAuthHandler(userService)

	// Register routes
	controllers.SetupAPIRoutes(
		router,
		territoryHandler,
		profileHandler,
		companyHandler,
		catalogHandler,
		caseHandler,
		reportHandler,
	)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}
