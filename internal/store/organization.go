package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"tenantly.app/api-server/core/db"
	"tenantly.app/api-server/internal/model"
)

type organizationStore struct {
	db db.DBTX
}

func newOrganizationStore(dbtx db.DBTX) OrganizationStore {
	return &organizationStore{db: dbtx}
}

const organizationColumns = "id, name, subdomain, created_at, updated_at"

func (s *organizationStore) GetByID(ctx context.Context, id int64) (*model.Organization, error) {
	row := s.db.QueryRow(ctx,
		"SELECT "+organizationColumns+" FROM organizations WHERE id = $1", id)
	return scanOrganization(row)
}

func (s *organizationStore) GetBySubdomain(ctx context.Context, subdomain string) (*model.Organization, error) {
	row := s.db.QueryRow(ctx,
		"SELECT "+organizationColumns+" FROM organizations WHERE subdomain = $1", subdomain)
	return scanOrganization(row)
}

func (s *organizationStore) Create(ctx context.Context, org *model.Organization) error {
	row := s.db.QueryRow(ctx,
		`INSERT INTO organizations (id, name, subdomain)
		 VALUES ($1, $2, $3)
		 RETURNING created_at, updated_at`,
		org.ID, org.Name, org.Subdomain)

	return row.Scan(&org.CreatedAt, &org.UpdatedAt)
}

func scanOrganization(row pgx.Row) (*model.Organization, error) {
	var org model.Organization
	err := row.Scan(&org.ID, &org.Name, &org.Subdomain, &org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &org, nil
}
