package model

import "time"

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectArchived  ProjectStatus = "archived"
	ProjectCompleted ProjectStatus = "completed"
)

type Project struct {
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	Description    *string       `json:"description,omitempty"`
	Name           string        `json:"name"`
	Status         ProjectStatus `json:"status"`
	ID             int64         `json:"id"`
	OrganizationID int64         `json:"organization_id"`
	CreatedBy      int64         `json:"created_by"`
}
