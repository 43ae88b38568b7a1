package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-timeclock/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitByIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/clock/in", middleware.RateLimitByIP(1, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	hit := func() int {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/clock/in", nil)
		r.RemoteAddr = "203.0.113.7:4242"
		router.ServeHTTP(w, r)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, hit())
	assert.Equal(t, http.StatusOK, hit())
	assert.Equal(t, http.StatusTooManyRequests, hit())
}

func TestRateLimitByUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limited := middleware.RateLimitByUser(1, 1)
	router := gin.New()
	router.GET("/timesheet/entries",
		func(c *gin.Context) { c.Set("user_id", c.Query("as")) },
		limited,
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	hit := func(as string) int {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/timesheet/entries?as="+as, nil)
		router.ServeHTTP(w, r)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, hit("alice"))
	assert.Equal(t, http.StatusTooManyRequests, hit("alice"))
	// separate buckets per user
	assert.Equal(t, http.StatusOK, hit("bob"))
	// no user in context passes through untouched
	assert.Equal(t, http.StatusOK, hit(""))
	assert.Equal(t, http.StatusOK, hit(""))
}
