package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"tenantly.app/api-server/internal/http/handler"
	"tenantly.app/api-server/internal/model"
	"tenantly.app/api-server/internal/service"
)

var _ = Describe("AuthHandler", func() {
	var (
		router *gin.Engine
		svc    *mockAuthService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockAuthService{}
		h := handler.NewAuthHandler(svc)
		router.POST("/auth/register", h.Register)
		router.POST("/auth/login", h.Login)
	})

	Describe("Register", func() {
		registerBody := func() []byte {
			body, err := json.Marshal(map[string]string{
				"email":             "owner@acme.test",
				"password":          "correct horse",
				"full_name":         "Ada Lovelace",
				"organization_name": "Acme Corp",
				"subdomain":         "acme",
			})
			Expect(err).NotTo(HaveOccurred())
			return body
		}

		It("returns 201 with the created user, password hash excluded", func() {
			svc.registerFn = func(_ context.Context, input service.RegisterInput) (*model.User, error) {
				return &model.User{
					ID:             42,
					Email:          input.Email,
					PasswordHash:   "$2a$10$secret",
					FullName:       input.FullName,
					Role:           model.RoleAdmin,
					OrganizationID: 7,
					IsActive:       true,
				}, nil
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(registerBody()))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["id"]).To(Equal("42"))
			Expect(resp["organization_id"]).To(Equal("7"))
			Expect(resp["role"]).To(Equal("admin"))
			Expect(w.Body.String()).NotTo(ContainSubstring("secret"))
		})

		It("returns 400 when the subdomain is taken", func() {
			svc.registerFn = func(_ context.Context, _ service.RegisterInput) (*model.User, error) {
				return nil, service.ErrSubdomainTaken
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(registerBody()))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("Subdomain already taken"))
		})

		It("returns 400 when the email is registered", func() {
			svc.registerFn = func(_ context.Context, _ service.RegisterInput) (*model.User, error) {
				return nil, service.ErrEmailTaken
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(registerBody()))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("Email already registered"))
		})

		It("returns 400 for a short password", func() {
			body, _ := json.Marshal(map[string]string{
				"email":             "owner@acme.test",
				"password":          "short",
				"full_name":         "Ada Lovelace",
				"organization_name": "Acme Corp",
				"subdomain":         "acme",
			})
			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 400 for an invalid subdomain", func() {
			body, _ := json.Marshal(map[string]string{
				"email":             "owner@acme.test",
				"password":          "correct horse",
				"full_name":         "Ada Lovelace",
				"organization_name": "Acme Corp",
				"subdomain":         "Not A Subdomain!",
			})
			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Login", func() {
		loginBody := func() []byte {
			body, err := json.Marshal(map[string]string{
				"email":    "ada@acme.test",
				"password": "correct horse",
			})
			Expect(err).NotTo(HaveOccurred())
			return body
		}

		It("returns 200 with a bearer token and the user", func() {
			svc.loginFn = func(_ context.Context, email, _ string) (string, *model.User, error) {
				return "signed.jwt.token", &model.User{ID: 42, Email: email, OrganizationID: 7, IsActive: true}, nil
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(loginBody()))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["access_token"]).To(Equal("signed.jwt.token"))
			Expect(resp["token_type"]).To(Equal("bearer"))
			Expect(resp["user"]).To(HaveKeyWithValue("id", "42"))
		})

		It("returns 401 for bad credentials", func() {
			svc.loginFn = func(_ context.Context, _, _ string) (string, *model.User, error) {
				return "", nil, service.ErrInvalidCredentials
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(loginBody()))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(ContainSubstring("Invalid email or password"))
		})

		It("returns 400 for an inactive account", func() {
			svc.loginFn = func(_ context.Context, _, _ string) (string, *model.User, error) {
				return "", nil, service.ErrInactiveAccount
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(loginBody()))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("Inactive user"))
		})

		It("returns 400 on invalid request body", func() {
			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
