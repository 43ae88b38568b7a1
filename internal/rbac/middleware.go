package rbac

import (
	"go-timeclock/internal/shared/apperror"
	"go-timeclock/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Authorize gates a route on (role, resource, action). The role comes from
// the session middleware, which must run first.
func Authorize(service Service, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get("role")
		if !ok {
			e := apperror.ErrUnauthorized
			response.Error(c, e.HTTPStatus, e.Code, "missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(EnforceRequest{
			Role:     role.(string),
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			e := apperror.ErrInternal
			response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
			c.Abort()
			return
		}

		if !allowed {
			e := apperror.ErrForbidden
			response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
