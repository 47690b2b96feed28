// Package main is the entry point for the todo service.
package main

import (
	"fmt"
	"log"

	"github.com/MaxKtzv/TodoAppPetProject/internal/config"
	"github.com/MaxKtzv/TodoAppPetProject/internal/handlers"
	"github.com/MaxKtzv/TodoAppPetProject/internal/middleware"
	"github.com/MaxKtzv/TodoAppPetProject/internal/repository"
	"github.com/MaxKtzv/TodoAppPetProject/internal/routes"
	"github.com/MaxKtzv/TodoAppPetProject/internal/service"
	"github.com/MaxKtzv/TodoAppPetProject/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// @title Todo Service API
// @version 1.0
// @description Multi-user todo service with bearer-token authentication
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	todoRepo := repository.NewTodoRepository(db)

	// Initialize services
	jwtService := service.NewJWTService(cfg.JWTSecret, cfg.TokenExpiry)
	if jwtService == nil {
		log.Fatal("JWT_SECRET must be at least 32 bytes")
	}
	breachChecker := service.NewBreachChecker(cfg.BreachAPIURL, cfg.BreachTimeout)
	authService := service.NewAuthService(userRepo, jwtService, breachChecker)
	userService := service.NewUserService(userRepo, breachChecker)
	todoService := service.NewTodoService(todoRepo)
	adminService := service.NewAdminService(todoRepo)

	// Initialize handlers
	h := routes.Handlers{
		Auth:   handlers.NewAuthHandler(authService),
		Todo:   handlers.NewTodoHandler(todoService),
		User:   handlers.NewUserHandler(userService),
		Admin:  handlers.NewAdminHandler(adminService),
		Health: handlers.NewHealthHandler(),
	}

	// Initialize metrics
	metrics := middleware.NewMetrics(prometheus.DefaultRegisterer)

	// Setup router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Setup routes
	routes.Setup(router, h, jwtService, metrics)

	// Start server
	log.Printf("Starting todo service on port %s", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
