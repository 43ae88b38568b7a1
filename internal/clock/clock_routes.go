package clock

import (
	"go-timeclock/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	clock := r.Group("/clock")
	clock.Use(middleware.ContextLogger(logger))
	// No session on the pad, so the limiter keys on the source IP.
	clock.Use(middleware.RateLimitByIP(2, 5))
	{
		clock.POST("/status", handler.Status)
		clock.POST("/in", handler.ClockIn)
		clock.POST("/out", handler.ClockOut)
	}
}
