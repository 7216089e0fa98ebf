package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tenantly.app/api-server/internal/http/handler"
	"tenantly.app/api-server/internal/http/middleware"
	"tenantly.app/api-server/internal/model"
	"tenantly.app/api-server/internal/service"
)

func SetupRoutes(router *gin.Engine, services *service.Services) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	authService := services.Auth()
	requireAuth := middleware.RequireAuth(authService)
	requireAdmin := middleware.RequireRole(model.RoleAdmin)

	v1 := router.Group("/api/v1")
	{
		authHandler := handler.NewAuthHandler(authService)
		AuthRouter(v1.Group("/auth"), authHandler)

		projectHandler := handler.NewProjectHandler(services.Projects())
		ProjectRouter(v1.Group("/projects", requireAuth), projectHandler, requireAdmin)

		userHandler := handler.NewUserHandler(services.Users())
		UserRouter(v1.Group("/users", requireAuth), userHandler, requireAdmin)
	}
}
