package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Vectus-Drive/backend/internal/domain"
	"github.com/Vectus-Drive/backend/internal/rbac"
)

func TestEnforce(t *testing.T) {
	svc, err := rbac.NewService()
	assert.NoError(t, err)

	cases := []struct {
		name     string
		role     domain.Role
		resource string
		action   string
		allowed  bool
	}{
		{"customer creates booking", domain.RoleCustomer, "bookings", "create", true},
		{"customer creates review", domain.RoleCustomer, "reviews", "create", true},
		{"customer deletes review", domain.RoleCustomer, "reviews", "delete", true},
		{"customer cannot create car", domain.RoleCustomer, "cars", "create", false},
		{"customer cannot update booking", domain.RoleCustomer, "bookings", "update", false},
		{"customer cannot create transaction", domain.RoleCustomer, "transactions", "create", false},

		{"employee creates car", domain.RoleEmployee, "cars", "create", true},
		{"employee updates car", domain.RoleEmployee, "cars", "update", true},
		{"employee creates service record", domain.RoleEmployee, "services", "create", true},
		{"employee settles booking", domain.RoleEmployee, "bookings", "update", true},
		{"employee creates notification", domain.RoleEmployee, "notifications", "create", true},
		{"employee cannot manage employees", domain.RoleEmployee, "employees", "create", false},
		{"employee cannot delete notification", domain.RoleEmployee, "notifications", "delete", false},

		{"admin deletes car", domain.RoleAdmin, "cars", "delete", true},
		{"admin manages employees", domain.RoleAdmin, "employees", "update", true},
		{"admin deletes transaction", domain.RoleAdmin, "transactions", "delete", true},
		{"admin deletes notification", domain.RoleAdmin, "notifications", "delete", true},

		{"unknown resource denied", domain.RoleAdmin, "vaults", "create", false},
		{"unknown action denied", domain.RoleEmployee, "cars", "export", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := svc.Enforce(tc.role, tc.resource, tc.action)
			assert.NoError(t, err)
			assert.Equal(t, tc.allowed, ok)
		})
	}
}

func TestEnforce_InvalidRole(t *testing.T) {
	svc, err := rbac.NewService()
	assert.NoError(t, err)

	ok, err := svc.Enforce(domain.Role("superuser"), "cars", "create")
	assert.NoError(t, err)
	assert.False(t, ok)
}
