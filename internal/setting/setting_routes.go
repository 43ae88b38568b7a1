package setting

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
	group := r.Group("/settings")
	group.Use(middleware.AdminAuth(session, users))
	group.Use(middleware.ContextLogger(logger))
	{
		group.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "setting", "read"),
			handler.Get,
		)

		group.PUT("/week-start",
			middleware.RateLimitByUser(1, 3),
			rbac.Authorize(rbacService, "setting", "update"),
			handler.UpdateWeekStart,
		)

		group.PUT("/timezone",
			middleware.RateLimitByUser(1, 3),
			rbac.Authorize(rbacService, "setting", "update"),
			handler.UpdateTimezone,
		)

		group.PUT("/report-template",
			middleware.RateLimitByUser(1, 3),
			rbac.Authorize(rbacService, "setting", "update"),
			handler.UpdateReportTemplate,
		)
	}
}
