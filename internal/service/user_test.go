package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"tenantly.app/api-server/internal/model"
	"tenantly.app/api-server/internal/service"
)

var _ = Describe("UserService", func() {
	var (
		ctx       context.Context
		userStore *mockUserStore
		svc       service.UserService
		principal *model.User
	)

	BeforeEach(func() {
		ctx = context.Background()
		userStore = &mockUserStore{}
		svc = service.NewUserService(userStore)
		principal = &model.User{ID: 42, OrganizationID: 7, Role: model.RoleAdmin, IsActive: true}
	})

	It("lists users of the principal's organization", func() {
		userStore.listByOrganizationFn = func(ctx context.Context, orgID int64) ([]model.User, error) {
			Expect(orgID).To(Equal(int64(7)))
			return []model.User{
				{ID: 42, OrganizationID: 7},
				{ID: 43, OrganizationID: 7},
			}, nil
		}

		users, err := svc.ListByOrganization(ctx, principal)
		Expect(err).NotTo(HaveOccurred())
		Expect(users).To(HaveLen(2))
	})

	It("wraps store failures", func() {
		boom := errors.New("connection reset")
		userStore.listByOrganizationFn = func(ctx context.Context, orgID int64) ([]model.User, error) {
			return nil, boom
		}

		_, err := svc.ListByOrganization(ctx, principal)
		Expect(err).To(MatchError(boom))
	})
})
