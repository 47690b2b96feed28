// Package routes defines HTTP routes for the todo service.
package routes

import (
	"log"

	"github.com/MaxKtzv/TodoAppPetProject/internal/handlers"
	"github.com/MaxKtzv/TodoAppPetProject/internal/middleware"
	"github.com/MaxKtzv/TodoAppPetProject/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles the handler set wired into the router.
type Handlers struct {
	Auth   *handlers.AuthHandler
	Todo   *handlers.TodoHandler
	User   *handlers.UserHandler
	Admin  *handlers.AdminHandler
	Health *handlers.HealthHandler
}

// Setup configures all HTTP routes for the application.
func Setup(router *gin.Engine, h Handlers, jwtService service.JWTService, metrics *middleware.Metrics) {
	if err := handlers.RegisterValidators(); err != nil {
		log.Fatalf("failed to register validators: %v", err)
	}

	router.Use(metrics.Handler())

	// Health check
	router.GET("/healthcheck", h.Health.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public auth routes
	auth := router.Group("/auth")
	{
		auth.POST("/", h.Auth.Register)
		auth.POST("/token", h.Auth.Token)
	}

	// Everything below requires a valid bearer token.
	authenticated := router.Group("/", middleware.Authenticate(jwtService))

	todos := authenticated.Group("/todos")
	{
		todos.GET("/", h.Todo.GetAll)
		todos.GET("/todo/:id", h.Todo.GetByID)
		todos.POST("/todo", h.Todo.Create)
		todos.PUT("/todo/:id", h.Todo.Update)
		todos.DELETE("/todo/:id", h.Todo.Delete)
	}

	user := authenticated.Group("/user")
	{
		user.GET("/", h.User.Get)
		user.PUT("/update", h.User.Update)
	}

	admin := authenticated.Group("/admin")
	{
		admin.GET("/todo", h.Admin.GetAllTodos)
		admin.DELETE("/todo/:id", h.Admin.DeleteTodo)
	}
}
