package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tenantly.app/api-server/common/id"
	"tenantly.app/api-server/internal/model"
	"tenantly.app/api-server/internal/store"
)

const listCacheTTL = 60 * time.Second

// ListingCache is the slice of core/cache.Cache the project service needs.
// Implementations never fail a request: a broken or absent cache degrades to
// direct store reads.
type ListingCache interface {
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any, ttl time.Duration)
	DeleteByPrefix(ctx context.Context, prefix string)
}

type CreateProjectInput struct {
	Description *string
	Status      *model.ProjectStatus
	Name        string
}

// UpdateProjectInput carries a partial update: nil fields are left untouched.
type UpdateProjectInput struct {
	Name        *string
	Description *string
	Status      *model.ProjectStatus
}

type ProjectPage struct {
	Projects   []model.Project `json:"projects"`
	Total      int64           `json:"total"`
	Page       int32           `json:"page"`
	Limit      int32           `json:"limit"`
	TotalPages int32           `json:"total_pages"`
}

type ProjectService interface {
	Create(ctx context.Context, principal *model.User, input CreateProjectInput) (*model.Project, error)
	List(ctx context.Context, principal *model.User, status *model.ProjectStatus, page, limit int32) (*ProjectPage, error)
	Get(ctx context.Context, principal *model.User, projectID int64) (*model.Project, error)
	Update(ctx context.Context, principal *model.User, projectID int64, input UpdateProjectInput) (*model.Project, error)
	Delete(ctx context.Context, principal *model.User, projectID int64) error
}

type projectService struct {
	projectStore store.ProjectStore
	cache        ListingCache
}

func NewProjectService(projectStore store.ProjectStore, cache ListingCache) ProjectService {
	return &projectService{
		projectStore: projectStore,
		cache:        cache,
	}
}

func (s *projectService) Create(ctx context.Context, principal *model.User, input CreateProjectInput) (*model.Project, error) {
	status := model.ProjectActive
	if input.Status != nil {
		status = *input.Status
	}

	project := &model.Project{
		ID:             id.New(),
		Name:           input.Name,
		Description:    input.Description,
		Status:         status,
		OrganizationID: principal.OrganizationID,
		CreatedBy:      principal.ID,
	}

	if err := s.projectStore.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	s.invalidateListings(ctx, principal.OrganizationID)

	slog.InfoContext(ctx, "project created", "project_id", project.ID, "organization_id", project.OrganizationID)

	return project, nil
}

func (s *projectService) List(ctx context.Context, principal *model.User, status *model.ProjectStatus, page, limit int32) (*ProjectPage, error) {
	key := listCacheKey(principal.OrganizationID, page, limit, status)

	var cached ProjectPage
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	total, err := s.projectStore.CountByOrg(ctx, principal.OrganizationID, status)
	if err != nil {
		return nil, fmt.Errorf("counting projects: %w", err)
	}

	// int64 arithmetic: a huge page number must not wrap into a negative offset.
	offset := (int64(page) - 1) * int64(limit)
	projects, err := s.projectStore.ListByOrg(ctx, principal.OrganizationID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	if projects == nil {
		projects = []model.Project{}
	}

	result := &ProjectPage{
		Projects:   projects,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}

	s.cache.Set(ctx, key, result, listCacheTTL)

	return result, nil
}

func (s *projectService) Get(ctx context.Context, principal *model.User, projectID int64) (*model.Project, error) {
	return s.projectStore.GetByOrg(ctx, projectID, principal.OrganizationID)
}

func (s *projectService) Update(ctx context.Context, principal *model.User, projectID int64, input UpdateProjectInput) (*model.Project, error) {
	project, err := s.projectStore.GetByOrg(ctx, projectID, principal.OrganizationID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = input.Description
	}
	if input.Status != nil {
		project.Status = *input.Status
	}

	if err := s.projectStore.Update(ctx, project); err != nil {
		return nil, err
	}

	s.invalidateListings(ctx, principal.OrganizationID)

	slog.InfoContext(ctx, "project updated", "project_id", project.ID, "organization_id", project.OrganizationID)

	return project, nil
}

func (s *projectService) Delete(ctx context.Context, principal *model.User, projectID int64) error {
	if err := s.projectStore.Delete(ctx, projectID, principal.OrganizationID); err != nil {
		return err
	}

	s.invalidateListings(ctx, principal.OrganizationID)

	slog.InfoContext(ctx, "project deleted", "project_id", projectID, "organization_id", principal.OrganizationID)

	return nil
}

// invalidateListings drops every cached listing page for the organization.
// Broader than strictly necessary, but keeps read-after-write within an org
// correct without tracking individual page/limit/status combinations.
func (s *projectService) invalidateListings(ctx context.Context, orgID int64) {
	s.cache.DeleteByPrefix(ctx, listCachePrefix(orgID))
}

func listCachePrefix(orgID int64) string {
	return fmt.Sprintf("projects:org:%d:", orgID)
}

func listCacheKey(orgID int64, page, limit int32, status *model.ProjectStatus) string {
	statusKey := "all"
	if status != nil {
		statusKey = string(*status)
	}
	return fmt.Sprintf("%spage:%d:limit:%d:status:%s", listCachePrefix(orgID), page, limit, statusKey)
}

func totalPages(total int64, limit int32) int32 {
	if limit <= 0 {
		return 0
	}
	return int32((total + int64(limit) - 1) / int64(limit))
}
