package router

import (
	"github.com/gin-gonic/gin"

	"tenantly.app/api-server/internal/http/handler"
)

func UserRouter(rg *gin.RouterGroup, h *handler.UserHandler, requireAdmin gin.HandlerFunc) {
	rg.GET("", requireAdmin, h.List)
	rg.GET("/me", h.Me)
}
