package schedule

import (
	"go-timeclock/internal/auth"
	"go-timeclock/internal/middleware"
	"go-timeclock/internal/rbac"
	"go-timeclock/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	session auth.Session,
	users user.Repository,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	group := r.Group("/schedules")
	group.Use(middleware.AdminAuth(session, users))
	group.Use(middleware.ContextLogger(logger))
	{
		group.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "schedule", "read"),
			handler.GetGrid,
		)

		group.PUT("",
			middleware.RateLimitByUser(1, 3),
			rbac.Authorize(rbacService, "schedule", "update"),
			handler.SetSchedules,
		)
	}
}
