package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"tenantly.app/api-server/common/id"
	"tenantly.app/api-server/core/config"
	"tenantly.app/api-server/internal/auth"
	"tenantly.app/api-server/internal/model"
	"tenantly.app/api-server/internal/store"
)

var (
	ErrSubdomainTaken     = errors.New("subdomain already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveAccount    = errors.New("inactive user")
	ErrUnauthenticated    = errors.New("not authenticated")
)

type RegisterInput struct {
	OrganizationName string
	Subdomain        string
	Email            string
	FullName         string
	Password         string
}

type AuthService interface {
	// Register creates an organization and its first admin user as one
	// atomic unit: a failure on either insert persists neither.
	Register(ctx context.Context, input RegisterInput) (*model.User, error)

	// Login verifies credentials and issues a bearer token. Unknown email
	// and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (string, *model.User, error)

	// Authenticate resolves a bearer token to an active user. Every failure
	// collapses to ErrUnauthenticated.
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	userStore store.UserStore
	tx        TxRunner
	jwtCfg    config.JWTConfig
}

func NewAuthService(userStore store.UserStore, tx TxRunner, jwtCfg config.JWTConfig) AuthService {
	return &authService{
		userStore: userStore,
		tx:        tx,
		jwtCfg:    jwtCfg,
	}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	// Hashed before the transaction opens; only the two inserts need atomicity.
	passwordHash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	var createdUser *model.User

	err = s.tx.WithTx(ctx, func(stores StoreProvider) error {
		orgStore := stores.Organizations()
		userStore := stores.Users()

		if _, err := orgStore.GetBySubdomain(ctx, input.Subdomain); err == nil {
			return ErrSubdomainTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("checking subdomain: %w", err)
		}

		if _, err := userStore.GetByEmail(ctx, input.Email); err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("checking email: %w", err)
		}

		org := &model.Organization{
			ID:        id.New(),
			Name:      input.OrganizationName,
			Subdomain: input.Subdomain,
		}
		if err := orgStore.Create(ctx, org); err != nil {
			return fmt.Errorf("creating organization: %w", err)
		}

		user := &model.User{
			ID:             id.New(),
			Email:          input.Email,
			PasswordHash:   passwordHash,
			FullName:       input.FullName,
			Role:           model.RoleAdmin,
			OrganizationID: org.ID,
			IsActive:       true,
		}
		if err := userStore.Create(ctx, user); err != nil {
			return fmt.Errorf("creating user: %w", err)
		}

		createdUser = user
		return nil
	})
	if err != nil {
		// A concurrent registration can slip past the pre-checks and hit
		// the unique index instead; map it to the same conflict error.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "subdomain") {
				return nil, ErrSubdomainTaken
			}
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	slog.InfoContext(ctx, "organization registered",
		"organization_id", createdUser.OrganizationID,
		"user_id", createdUser.ID,
		"subdomain", input.Subdomain,
	)

	return createdUser, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("getting user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", nil, ErrInactiveAccount
	}

	// Best-effort: a failed last-login write must not block token issuance.
	if err := s.userStore.UpdateLastLogin(ctx, user.ID); err != nil {
		slog.WarnContext(ctx, "failed to record last login", "error", err, "user_id", user.ID)
	}

	token, err := auth.GenerateToken(user.ID, user.OrganizationID, []byte(s.jwtCfg.Secret), s.jwtCfg.Algorithm, s.jwtCfg.Expiry)
	if err != nil {
		return "", nil, fmt.Errorf("issuing token: %w", err)
	}

	slog.InfoContext(ctx, "user logged in", "user_id", user.ID, "organization_id", user.OrganizationID)

	return token, user, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	claims, err := auth.ParseToken(token, []byte(s.jwtCfg.Secret))
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.userStore.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	if !user.IsActive {
		return nil, ErrUnauthenticated
	}

	// Guards against tokens minted before an organization change.
	if user.OrganizationID != claims.OrganizationID {
		return nil, ErrUnauthenticated
	}

	return user, nil
}
