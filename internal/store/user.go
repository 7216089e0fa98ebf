package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"tenantly.app/api-server/core/db"
	"tenantly.app/api-server/internal/model"
)

type userStore struct {
	db db.DBTX
}

func newUserStore(dbtx db.DBTX) UserStore {
	return &userStore{db: dbtx}
}

const userColumns = "id, email, password_hash, full_name, role, organization_id, is_active, last_login, created_at, updated_at"

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id)
	return scanUser(row)
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email)
	return scanUser(row)
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	row := s.db.QueryRow(ctx,
		`INSERT INTO users (id, email, password_hash, full_name, role, organization_id, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at`,
		user.ID, user.Email, user.PasswordHash, user.FullName, user.Role, user.OrganizationID, user.IsActive)

	return row.Scan(&user.CreatedAt, &user.UpdatedAt)
}

func (s *userStore) UpdateLastLogin(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx,
		"UPDATE users SET last_login = now() WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *userStore) ListByOrganization(ctx context.Context, orgID int64) ([]model.User, error) {
	rows, err := s.db.Query(ctx,
		"SELECT "+userColumns+" FROM users WHERE organization_id = $1 ORDER BY created_at DESC", orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func scanUser(row pgx.Row) (*model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FullName,
		&user.Role,
		&user.OrganizationID,
		&user.IsActive,
		&user.LastLogin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
