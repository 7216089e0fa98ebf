package dto

import (
	"time"

	"tenantly.app/api-server/internal/model"
	"tenantly.app/api-server/internal/service"
)

type CreateProjectRequest struct {
	Description *string              `json:"description,omitempty" binding:"omitempty,max=10000"`
	Status      *model.ProjectStatus `json:"status,omitempty" binding:"omitempty,oneof=active archived completed"`
	Name        string               `json:"name" binding:"required,min=1,max=255"`
}

type UpdateProjectRequest struct {
	Name        *string              `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string              `json:"description,omitempty" binding:"omitempty,max=10000"`
	Status      *model.ProjectStatus `json:"status,omitempty" binding:"omitempty,oneof=active archived completed"`
}

type ListProjectsQuery struct {
	Status *model.ProjectStatus `form:"status" binding:"omitempty,oneof=active archived completed"`
	Page   int32                `form:"page,default=1" binding:"min=1"`
	Limit  int32                `form:"limit,default=10" binding:"min=1,max=100"`
}

type ProjectResponse struct {
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	Description    *string             `json:"description,omitempty"`
	Name           string              `json:"name"`
	Status         model.ProjectStatus `json:"status"`
	ID             int64               `json:"id,string"`
	OrganizationID int64               `json:"organization_id,string"`
	CreatedBy      int64               `json:"created_by,string"`
}

type ProjectListResponse struct {
	Projects   []ProjectResponse `json:"projects"`
	Total      int64             `json:"total"`
	Page       int32             `json:"page"`
	Limit      int32             `json:"limit"`
	TotalPages int32             `json:"total_pages"`
}

func ToProjectResponse(project *model.Project) ProjectResponse {
	return ProjectResponse{
		ID:             project.ID,
		Name:           project.Name,
		Description:    project.Description,
		Status:         project.Status,
		OrganizationID: project.OrganizationID,
		CreatedBy:      project.CreatedBy,
		CreatedAt:      project.CreatedAt,
		UpdatedAt:      project.UpdatedAt,
	}
}

func ToProjectListResponse(page *service.ProjectPage) ProjectListResponse {
	projects := make([]ProjectResponse, len(page.Projects))
	for i := range page.Projects {
		projects[i] = ToProjectResponse(&page.Projects[i])
	}
	return ProjectListResponse{
		Projects:   projects,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	}
}
