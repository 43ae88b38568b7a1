package rbac_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-timeclock/internal/rbac"
	rbacMock "go-timeclock/internal/rbac/mock"
	"go-timeclock/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(t *testing.T, svc rbac.Service, role any) *httptest.ResponseRecorder {
		t.Helper()
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees", nil)
		if role != nil {
			c.Set("role", role)
		}

		handler := rbac.Authorize(svc, "employee", "read")
		handler(c)
		return w
	}

	t.Run("allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := rbacMock.NewMockService(ctrl)
		svc.EXPECT().
			Enforce(rbac.EnforceRequest{Role: user.RoleAdmin, Resource: "employee", Action: "read"}).
			Return(true, nil)

		w := run(t, svc, user.RoleAdmin)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := rbacMock.NewMockService(ctrl)
		svc.EXPECT().
			Enforce(gomock.Any()).
			Return(false, nil)

		w := run(t, svc, user.RoleEmployee)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		w := run(t, rbacMock.NewMockService(ctrl), nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("enforcer failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := rbacMock.NewMockService(ctrl)
		svc.EXPECT().
			Enforce(gomock.Any()).
			Return(false, errors.New("policy load failed"))

		w := run(t, svc, user.RoleAdmin)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestEnforcerPolicy(t *testing.T) {
	svc := newRealService(t)

	allowed, err := svc.Enforce(rbac.EnforceRequest{Role: user.RoleAdmin, Resource: "timesheet", Action: "update"})
	assert.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = svc.Enforce(rbac.EnforceRequest{Role: user.RoleEmployee, Resource: "timesheet", Action: "update"})
	assert.NoError(t, err)
	assert.False(t, allowed)
}
