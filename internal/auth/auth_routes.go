package auth

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes takes its middlewares as handlers because the middleware
// package already depends on this one.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, adminAuth, contextLogger, loginRateLimit gin.HandlerFunc) {
	group := r.Group("/auth")
	group.Use(contextLogger)
	{
		group.POST("/login", loginRateLimit, handler.Login)
		group.POST("/logout", adminAuth, handler.Logout)
	}
}
