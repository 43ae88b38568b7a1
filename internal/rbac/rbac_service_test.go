package rbac_test

import (
	"testing"

	"go-timeclock/internal/rbac"
	"go-timeclock/internal/rbac/infra"

	"github.com/stretchr/testify/require"
)

func newRealService(t *testing.T) rbac.Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer()
	require.NoError(t, err)
	return rbac.NewService(enforcer)
}

func TestService_AdminGrid(t *testing.T) {
	svc := newRealService(t)

	resources := []string{"employee", "timesheet", "schedule", "setting", "report", "export"}
	for _, res := range resources {
		for _, act := range []string{"read", "create", "update", "delete"} {
			allowed, err := svc.Enforce(rbac.EnforceRequest{Role: "ADMIN", Resource: res, Action: act})
			require.NoError(t, err)
			require.True(t, allowed, "%s %s should be allowed for ADMIN", res, act)
		}

		allowed, err := svc.Enforce(rbac.EnforceRequest{Role: "EMPLOYEE", Resource: res, Action: "read"})
		require.NoError(t, err)
		require.False(t, allowed, "%s should be closed to EMPLOYEE", res)
	}
}
