package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"tenantly.app/api-server/internal/http/middleware"
	"tenantly.app/api-server/internal/model"
	"tenantly.app/api-server/internal/service"
)

type mockAuthService struct {
	authenticateFn func(ctx context.Context, token string) (*model.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, input service.RegisterInput) (*model.User, error) {
	return nil, nil
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	return "", nil, nil
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, token)
	}
	return nil, service.ErrUnauthenticated
}

var _ = Describe("RequireAuth", func() {
	var (
		router  *gin.Engine
		authSvc *mockAuthService
		user    *model.User
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)

		user = &model.User{ID: 42, OrganizationID: 7, Role: model.RoleMember, IsActive: true}
		authSvc = &mockAuthService{
			authenticateFn: func(_ context.Context, token string) (*model.User, error) {
				if token == "valid-token" {
					return user, nil
				}
				return nil, service.ErrUnauthenticated
			},
		}

		router = gin.New()
		router.GET("/protected", middleware.RequireAuth(authSvc), func(c *gin.Context) {
			principal := middleware.GetUser(c.Request.Context())
			Expect(principal).To(Equal(user))
			c.Status(http.StatusOK)
		})
	})

	serve := func(authorization string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("admits a valid bearer token and exposes the principal", func() {
		Expect(serve("Bearer valid-token").Code).To(Equal(http.StatusOK))
	})

	It("accepts a lowercase scheme", func() {
		Expect(serve("bearer valid-token").Code).To(Equal(http.StatusOK))
	})

	It("rejects a missing header", func() {
		Expect(serve("").Code).To(Equal(http.StatusUnauthorized))
	})

	It("rejects a non-bearer scheme", func() {
		Expect(serve("Basic dXNlcjpwYXNz").Code).To(Equal(http.StatusUnauthorized))
	})

	It("rejects an invalid token", func() {
		Expect(serve("Bearer bogus").Code).To(Equal(http.StatusUnauthorized))
	})
})

var _ = Describe("RequireRole", func() {
	var (
		router  *gin.Engine
		authSvc *mockAuthService
		user    *model.User
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)

		user = &model.User{ID: 42, OrganizationID: 7, Role: model.RoleMember, IsActive: true}
		authSvc = &mockAuthService{
			authenticateFn: func(_ context.Context, _ string) (*model.User, error) {
				return user, nil
			},
		}

		router = gin.New()
		router.GET("/admin",
			middleware.RequireAuth(authSvc),
			middleware.RequireRole(model.RoleAdmin),
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)
	})

	serve := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("admits a user with the required role", func() {
		user.Role = model.RoleAdmin
		Expect(serve().Code).To(Equal(http.StatusOK))
	})

	It("rejects a user with a different role", func() {
		Expect(serve().Code).To(Equal(http.StatusForbidden))
	})
})

var _ = Describe("GetUser", func() {
	It("returns nil outside RequireAuth", func() {
		Expect(middleware.GetUser(context.Background())).To(BeNil())
	})
})
