package routes

import (
	"log"

	"rental-portal-backend/internal/api/handlers"
	"rental-portal-backend/internal/api/middleware"
	"rental-portal-backend/internal/auth"
	"rental-portal-backend/internal/config"
	"rental-portal-backend/internal/repository"
	"rental-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	corporationRepo := repository.NewCorporationRepository(db)
	buildingRepo := repository.NewBuildingRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	corporationService := service.NewCorporationService(corporationRepo, validator)
	buildingService := service.NewBuildingService(buildingRepo, corporationRepo, validator)
	propertyService := service.NewPropertyService(propertyRepo, buildingRepo, validator)
	tenantService := service.NewTenantService(tenantRepo, validator)
	allocationService := service.NewAllocationService(db, validator)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: Failed to load auth config: %v", err)
		// Continue without auth if config fails to load
		authConfig = nil
	}

	var authHandler *auth.AuthHandler
	var authMiddleware *auth.AuthMiddleware
	if authConfig != nil {
		authService, err := auth.NewAuthService(authConfig, userRepo)
		if err != nil {
			log.Printf("Warning: Failed to initialize auth service: %v", err)
		} else {
			authHandler = auth.NewAuthHandler(authService)
			authMiddleware = auth.NewAuthMiddleware(authService)
		}
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	corporationHandler := handlers.NewCorporationHandler(corporationService)
	buildingHandler := handlers.NewBuildingHandler(buildingService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	allocationHandler := handlers.NewAllocationHandler(allocationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	if authHandler != nil {
		authGroup := router.Group("/api/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authMiddleware.RequireAuth(), authHandler.Logout)
			authGroup.GET("/user", authMiddleware.RequireAuth(), authHandler.CurrentUser)
		}
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")

	// Apply auth middleware to require authentication for all API endpoints
	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	{
		// Corporation routes
		corporations := v1.Group("/corporations")
		{
			corporations.GET("", corporationHandler.ListCorporations)
			corporations.POST("", corporationHandler.CreateCorporation)
			corporations.GET("/:id", corporationHandler.GetCorporation)
			corporations.PUT("/:id", corporationHandler.UpdateCorporation)
			corporations.DELETE("/:id", corporationHandler.DeleteCorporation)
			corporations.GET("/:id/buildings", corporationHandler.GetCorporationWithBuildings)
		}

		// Building routes
		buildings := v1.Group("/buildings")
		{
			buildings.GET("", buildingHandler.GetBuildingsByCorporation) // Requires corporation_id parameter
			buildings.POST("", buildingHandler.CreateBuilding)
			buildings.GET("/:id", buildingHandler.GetBuilding)
			buildings.PUT("/:id", buildingHandler.UpdateBuilding)
			buildings.DELETE("/:id", buildingHandler.DeleteBuilding)
			buildings.GET("/:id/properties", buildingHandler.GetBuildingWithProperties)
		}

		// Property routes
		properties := v1.Group("/properties")
		{
			properties.GET("", propertyHandler.GetPropertiesByBuilding) // Requires building_id parameter
			properties.POST("", propertyHandler.CreateProperty)
			properties.GET("/:id", propertyHandler.GetProperty)
			properties.PUT("/:id", propertyHandler.UpdateProperty)
			properties.DELETE("/:id", propertyHandler.DeleteProperty)
			properties.GET("/:id/tenancy-periods", propertyHandler.GetPropertyWithTenancyPeriods)
			properties.GET("/:id/active", propertyHandler.GetPropertyActivity)
			properties.GET("/:id/tenants", allocationHandler.ListPropertyTenants)
			properties.POST("/:id/createRentalContract", allocationHandler.CreateRentalContract)
		}

		// Tenant routes
		tenants := v1.Group("/tenants")
		{
			tenants.GET("", tenantHandler.ListTenants)
			tenants.POST("", tenantHandler.CreateTenant)
			tenants.GET("/:id", tenantHandler.GetTenant)
			tenants.PUT("/:id", tenantHandler.UpdateTenant)
			tenants.DELETE("/:id", tenantHandler.DeleteTenant)
			tenants.GET("/:id/tenancy-periods", tenantHandler.GetTenantWithTenancyPeriods)
			tenants.POST("/:id/move", allocationHandler.MoveTenant)
			tenants.POST("/:id/restore", tenantHandler.RestoreTenant)
			tenants.DELETE("/:id/force", tenantHandler.ForceDeleteTenant)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
