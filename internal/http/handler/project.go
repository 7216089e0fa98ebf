package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tenantly.app/api-server/internal/http/dto"
	"tenantly.app/api-server/internal/http/middleware"
	"tenantly.app/api-server/internal/service"
	"tenantly.app/api-server/internal/store"
)

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	principal := middleware.GetUser(ctx)

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Create(ctx, principal, service.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create project", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

func (h *ProjectHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	principal := middleware.GetUser(ctx)

	var query dto.ListProjectsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		slog.WarnContext(ctx, "invalid query parameters", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.projectService.List(ctx, principal, query.Status, query.Page, query.Limit)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list projects", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectListResponse(page))
}

func (h *ProjectHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	principal := middleware.GetUser(ctx)

	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}

	project, err := h.projectService.Get(ctx, principal, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to get project", "error", err, "project_id", projectID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get project"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

func (h *ProjectHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	principal := middleware.GetUser(ctx)

	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Update(ctx, principal, projectID, service.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to update project", "error", err, "project_id", projectID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update project"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	principal := middleware.GetUser(ctx)

	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}

	if err := h.projectService.Delete(ctx, principal, projectID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to delete project", "error", err, "project_id", projectID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete project"})
		return
	}

	c.Status(http.StatusNoContent)
}

func projectIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// An unparseable ID can't match any project; indistinguishable
		// from a missing one.
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return 0, false
	}
	return id, true
}
