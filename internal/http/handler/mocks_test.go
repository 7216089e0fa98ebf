package handler_test

import (
	"context"

	"tenantly.app/api-server/internal/model"
	"tenantly.app/api-server/internal/service"
)

type mockAuthService struct {
	registerFn     func(ctx context.Context, input service.RegisterInput) (*model.User, error)
	loginFn        func(ctx context.Context, email, password string) (string, *model.User, error)
	authenticateFn func(ctx context.Context, token string) (*model.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, input service.RegisterInput) (*model.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, input)
	}
	return nil, nil
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return "", nil, nil
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, token)
	}
	return nil, service.ErrUnauthenticated
}

type mockProjectService struct {
	createFn func(ctx context.Context, principal *model.User, input service.CreateProjectInput) (*model.Project, error)
	listFn   func(ctx context.Context, principal *model.User, status *model.ProjectStatus, page, limit int32) (*service.ProjectPage, error)
	getFn    func(ctx context.Context, principal *model.User, projectID int64) (*model.Project, error)
	updateFn func(ctx context.Context, principal *model.User, projectID int64, input service.UpdateProjectInput) (*model.Project, error)
	deleteFn func(ctx context.Context, principal *model.User, projectID int64) error
}

func (m *mockProjectService) Create(ctx context.Context, principal *model.User, input service.CreateProjectInput) (*model.Project, error) {
	if m.createFn != nil {
		return m.createFn(ctx, principal, input)
	}
	return nil, nil
}

func (m *mockProjectService) List(ctx context.Context, principal *model.User, status *model.ProjectStatus, page, limit int32) (*service.ProjectPage, error) {
	if m.listFn != nil {
		return m.listFn(ctx, principal, status, page, limit)
	}
	return nil, nil
}

func (m *mockProjectService) Get(ctx context.Context, principal *model.User, projectID int64) (*model.Project, error) {
	if m.getFn != nil {
		return m.getFn(ctx, principal, projectID)
	}
	return nil, nil
}

func (m *mockProjectService) Update(ctx context.Context, principal *model.User, projectID int64, input service.UpdateProjectInput) (*model.Project, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, principal, projectID, input)
	}
	return nil, nil
}

func (m *mockProjectService) Delete(ctx context.Context, principal *model.User, projectID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, principal, projectID)
	}
	return nil
}

type mockUserService struct {
	listByOrganizationFn func(ctx context.Context, principal *model.User) ([]model.User, error)
}

func (m *mockUserService) ListByOrganization(ctx context.Context, principal *model.User) ([]model.User, error) {
	if m.listByOrganizationFn != nil {
		return m.listByOrganizationFn(ctx, principal)
	}
	return nil, nil
}

func strPtr(s string) *string { return &s }
