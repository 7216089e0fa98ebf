package service

import (
	"context"
	"fmt"

	"tenantly.app/api-server/internal/model"
	"tenantly.app/api-server/internal/store"
)

type UserService interface {
	// ListByOrganization returns every user of the principal's organization,
	// newest first.
	ListByOrganization(ctx context.Context, principal *model.User) ([]model.User, error)
}

type userService struct {
	userStore store.UserStore
}

func NewUserService(userStore store.UserStore) UserService {
	return &userService{userStore: userStore}
}

func (s *userService) ListByOrganization(ctx context.Context, principal *model.User) ([]model.User, error) {
	users, err := s.userStore.ListByOrganization(ctx, principal.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}
