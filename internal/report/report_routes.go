package report

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
	group := r.Group("/reports")
	group.Use(middleware.AdminAuth(session, users))
	group.Use(middleware.ContextLogger(logger))
	{
		group.GET("/weekly",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "report", "read"),
			handler.Weekly,
		)

		group.GET("/weekly/export",
			middleware.RateLimitByUser(1, 3),
			rbac.Authorize(rbacService, "report", "read"),
			handler.ExportXLSX,
		)
	}
}
