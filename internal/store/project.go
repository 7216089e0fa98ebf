package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"tenantly.app/api-server/core/db"
	"tenantly.app/api-server/internal/model"
)

type projectStore struct {
	db db.DBTX
}

func newProjectStore(dbtx db.DBTX) ProjectStore {
	return &projectStore{db: dbtx}
}

const projectColumns = "id, name, description, status, organization_id, created_by, created_at, updated_at"

func (s *projectStore) GetByOrg(ctx context.Context, id, orgID int64) (*model.Project, error) {
	row := s.db.QueryRow(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE id = $1 AND organization_id = $2",
		id, orgID)
	return scanProject(row)
}

func (s *projectStore) ListByOrg(ctx context.Context, orgID int64, status *model.ProjectStatus, limit int32, offset int64) ([]model.Project, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+projectColumns+` FROM projects
		 WHERE organization_id = $1 AND ($2::text IS NULL OR status = $2)
		 ORDER BY created_at DESC
		 LIMIT $3 OFFSET $4`,
		orgID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}
	return projects, rows.Err()
}

func (s *projectStore) CountByOrg(ctx context.Context, orgID int64, status *model.ProjectStatus) (int64, error) {
	var total int64
	err := s.db.QueryRow(ctx,
		`SELECT count(*) FROM projects
		 WHERE organization_id = $1 AND ($2::text IS NULL OR status = $2)`,
		orgID, status).Scan(&total)
	return total, err
}

func (s *projectStore) Create(ctx context.Context, project *model.Project) error {
	row := s.db.QueryRow(ctx,
		`INSERT INTO projects (id, name, description, status, organization_id, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		project.ID, project.Name, project.Description, project.Status, project.OrganizationID, project.CreatedBy)

	return row.Scan(&project.CreatedAt, &project.UpdatedAt)
}

func (s *projectStore) Update(ctx context.Context, project *model.Project) error {
	row := s.db.QueryRow(ctx,
		`UPDATE projects
		 SET name = $3, description = $4, status = $5, updated_at = now()
		 WHERE id = $1 AND organization_id = $2
		 RETURNING updated_at`,
		project.ID, project.OrganizationID, project.Name, project.Description, project.Status)

	if err := row.Scan(&project.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *projectStore) Delete(ctx context.Context, id, orgID int64) error {
	tag, err := s.db.Exec(ctx,
		"DELETE FROM projects WHERE id = $1 AND organization_id = $2", id, orgID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanProject(row pgx.Row) (*model.Project, error) {
	var project model.Project
	err := row.Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.Status,
		&project.OrganizationID,
		&project.CreatedBy,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}
