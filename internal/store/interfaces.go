package store

import (
	"context"
	"errors"

	"tenantly.app/api-server/internal/model"
)

var ErrNotFound = errors.New("not found")

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	UpdateLastLogin(ctx context.Context, id int64) error
	ListByOrganization(ctx context.Context, orgID int64) ([]model.User, error)
}

type OrganizationStore interface {
	GetByID(ctx context.Context, id int64) (*model.Organization, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*model.Organization, error)
	Create(ctx context.Context, org *model.Organization) error
}

type ProjectStore interface {
	// GetByOrg and the other org-scoped operations treat a row owned by
	// another organization exactly like a missing row: ErrNotFound.
	GetByOrg(ctx context.Context, id, orgID int64) (*model.Project, error)
	ListByOrg(ctx context.Context, orgID int64, status *model.ProjectStatus, limit int32, offset int64) ([]model.Project, error)
	CountByOrg(ctx context.Context, orgID int64, status *model.ProjectStatus) (int64, error)
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id, orgID int64) error
}
