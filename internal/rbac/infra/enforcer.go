package infra

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && (r.act == p.act || p.act == "*")
`

// NewEnforcer builds the enforcer with the app's fixed policy. There are
// exactly two roles and the grid never changes at runtime, so the policy is
// compiled in rather than loaded from storage.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	policies := [][]string{
		{"ADMIN", "employee", "*"},
		{"ADMIN", "timesheet", "*"},
		{"ADMIN", "schedule", "*"},
		{"ADMIN", "setting", "*"},
		{"ADMIN", "report", "*"},
		{"ADMIN", "export", "*"},
	}
	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return e, nil
}
