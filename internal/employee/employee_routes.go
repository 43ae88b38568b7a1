package employee

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
	group := r.Group("/employees")
	group.Use(middleware.AdminAuth(session, users))
	group.Use(middleware.ContextLogger(logger))
	{
		group.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "employee", "read"),
			handler.List,
		)

		group.POST("",
			middleware.RateLimitByUser(1, 3),
			rbac.Authorize(rbacService, "employee", "create"),
			handler.Create,
		)

		group.PUT("/:id",
			middleware.RateLimitByUser(1, 3),
			rbac.Authorize(rbacService, "employee", "update"),
			handler.Update,
		)

		group.PATCH("/:id/active",
			middleware.RateLimitByUser(1, 3),
			rbac.Authorize(rbacService, "employee", "update"),
			handler.ToggleActive,
		)

		group.PUT("/:id/pin",
			middleware.RateLimitByUser(1, 3),
			rbac.Authorize(rbacService, "employee", "update"),
			handler.UpdatePIN,
		)

		group.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "employee", "delete"),
			handler.Delete,
		)
	}
}
