package timesheet

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
	group := r.Group("/timesheet")
	group.Use(middleware.AdminAuth(session, users))
	group.Use(middleware.ContextLogger(logger))
	{
		group.GET("/entries",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "timesheet", "read"),
			handler.ListEntries,
		)

		group.GET("/audits",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "timesheet", "read"),
			handler.ListAudits,
		)

		group.PUT("/entries/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "timesheet", "update"),
			handler.EditEntry,
		)
	}
}
