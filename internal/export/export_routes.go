package export

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
	group := r.Group("/export")
	group.Use(middleware.AdminAuth(session, users))
	group.Use(middleware.ContextLogger(logger))
	{
		group.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "export", "create"),
			handler.ExportNow,
		)
	}
}
