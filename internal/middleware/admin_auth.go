package middleware

import (
	"errors"
	"net/http"
	"strings"

	"go-timeclock/internal/auth"
	autherrors "go-timeclock/internal/auth/errors"
	"go-timeclock/internal/shared/apperror"
	"go-timeclock/internal/shared/response"
	"go-timeclock/internal/user"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminAuth verifies the session token (cookie or bearer) and requires the
// holder to be an active ADMIN. Every admin action behind this middleware
// re-checks against the user table, so disabling an admin kills their
// session on the next request.
func AdminAuth(session auth.Session, users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie(auth.CookieName); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Session token not found", nil)
			c.Abort()
			return
		}

		userID, err := session.Verify(tokenString)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		u, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, autherrors.ErrInvalidToken.Message, nil)
			} else {
				response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, apperror.ErrInternal.Message, nil)
			}
			c.Abort()
			return
		}

		if !u.IsActive || u.Role != user.RoleAdmin {
			errObj := autherrors.ErrNotAdmin
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		c.Set("user_id", u.ID.String())
		c.Set("role", u.Role)

		c.Next()
	}
}
