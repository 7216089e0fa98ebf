package router

import (
	"github.com/gin-gonic/gin"

	"tenantly.app/api-server/internal/http/handler"
)

func ProjectRouter(rg *gin.RouterGroup, h *handler.ProjectHandler, requireAdmin gin.HandlerFunc) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", requireAdmin, h.Update)
	rg.DELETE("/:id", requireAdmin, h.Delete)
}
