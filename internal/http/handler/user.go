package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tenantly.app/api-server/internal/http/dto"
	"tenantly.app/api-server/internal/http/middleware"
	"tenantly.app/api-server/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	principal := middleware.GetUser(ctx)

	users, err := h.userService.ListByOrganization(ctx, principal)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list users", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

func (h *UserHandler) Me(c *gin.Context) {
	principal := middleware.GetUser(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToUserResponse(principal))
}
