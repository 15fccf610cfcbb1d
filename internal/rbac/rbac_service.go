package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"github.com/Vectus-Drive/backend/internal/domain"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(role domain.Role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// policies is the static role/resource/action table. Roles form a closed
// enumeration, so the whole policy is known at compile time and loaded once.
var policies = [][]string{
	// fleet management is staff-only
	{domain.RoleEmployee.String(), "cars", "create"},
	{domain.RoleEmployee.String(), "cars", "update"},
	{domain.RoleEmployee.String(), "cars", "delete"},
	{domain.RoleAdmin.String(), "cars", "create"},
	{domain.RoleAdmin.String(), "cars", "update"},
	{domain.RoleAdmin.String(), "cars", "delete"},

	// service records are staff-only
	{domain.RoleEmployee.String(), "services", "create"},
	{domain.RoleEmployee.String(), "services", "update"},
	{domain.RoleEmployee.String(), "services", "delete"},
	{domain.RoleAdmin.String(), "services", "create"},
	{domain.RoleAdmin.String(), "services", "update"},
	{domain.RoleAdmin.String(), "services", "delete"},

	// employee profiles are managed by admins
	{domain.RoleAdmin.String(), "employees", "create"},
	{domain.RoleAdmin.String(), "employees", "update"},
	{domain.RoleAdmin.String(), "employees", "delete"},

	// customers book cars and leave reviews
	{domain.RoleCustomer.String(), "bookings", "create"},
	{domain.RoleCustomer.String(), "reviews", "create"},
	{domain.RoleCustomer.String(), "reviews", "update"},
	{domain.RoleCustomer.String(), "reviews", "delete"},

	// staff settle bookings and transactions
	{domain.RoleEmployee.String(), "bookings", "update"},
	{domain.RoleEmployee.String(), "bookings", "delete"},
	{domain.RoleEmployee.String(), "transactions", "create"},
	{domain.RoleEmployee.String(), "transactions", "update"},
	{domain.RoleEmployee.String(), "transactions", "delete"},
	{domain.RoleAdmin.String(), "bookings", "update"},
	{domain.RoleAdmin.String(), "bookings", "delete"},
	{domain.RoleAdmin.String(), "transactions", "create"},
	{domain.RoleAdmin.String(), "transactions", "update"},
	{domain.RoleAdmin.String(), "transactions", "delete"},

	// notifications are produced by staff
	{domain.RoleEmployee.String(), "notifications", "create"},
	{domain.RoleAdmin.String(), "notifications", "create"},
	{domain.RoleAdmin.String(), "notifications", "update"},
	{domain.RoleAdmin.String(), "notifications", "delete"},
}

// NewService builds the enforcer from the embedded model and static policy.
func NewService() (Service, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(role domain.Role, resource, action string) (bool, error) {
	if !role.Valid() {
		return false, nil
	}
	return s.enforcer.Enforce(role.String(), resource, action)
}
