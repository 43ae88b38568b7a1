package clock_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-timeclock/internal/clock"
	clockerrors "go-timeclock/internal/clock/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	statusFn   func(ctx context.Context, req clock.PunchRequest) (clock.StatusResponse, error)
	clockInFn  func(ctx context.Context, req clock.PunchRequest) (clock.PunchResponse, error)
	clockOutFn func(ctx context.Context, req clock.PunchRequest) (clock.PunchResponse, error)
}

func (f *fakeService) Status(ctx context.Context, req clock.PunchRequest) (clock.StatusResponse, error) {
	return f.statusFn(ctx, req)
}
func (f *fakeService) ClockIn(ctx context.Context, req clock.PunchRequest) (clock.PunchResponse, error) {
	return f.clockInFn(ctx, req)
}
func (f *fakeService) ClockOut(ctx context.Context, req clock.PunchRequest) (clock.PunchResponse, error) {
	return f.clockOutFn(ctx, req)
}

func postJSON(t *testing.T, handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/clock/in", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func TestHandler_ClockIn(t *testing.T) {
	gin.SetMode(gin.TestMode)

	entryID := uuid.NewString()
	svc := &fakeService{
		clockInFn: func(ctx context.Context, req clock.PunchRequest) (clock.PunchResponse, error) {
			assert.Equal(t, "5678", req.PinCode)
			return clock.PunchResponse{EntryID: entryID, ClockInTime: "2026-03-02T09:00:00Z"}, nil
		},
	}
	h := clock.NewHandler(svc)

	w := postJSON(t, h.ClockIn, `{"pin_code":"5678"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), entryID)
	assert.Contains(t, w.Body.String(), `"ok":true`)
}

func TestHandler_ClockIn_ShiftAlreadyOpen(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		clockInFn: func(ctx context.Context, req clock.PunchRequest) (clock.PunchResponse, error) {
			return clock.PunchResponse{}, clockerrors.ErrShiftAlreadyOpen
		},
	}
	h := clock.NewHandler(svc)

	w := postJSON(t, h.ClockIn, `{"pin_code":"5678"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "SHIFT_ALREADY_OPEN")
	assert.Contains(t, w.Body.String(), `"ok":false`)
}

func TestHandler_ClockIn_BadBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := clock.NewHandler(&fakeService{})

	// missing pin
	w := postJSON(t, h.ClockIn, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// non numeric pin
	w = postJSON(t, h.ClockIn, `{"pin_code":"abcd"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// too short
	w = postJSON(t, h.ClockIn, `{"pin_code":"12"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Status(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		statusFn: func(ctx context.Context, req clock.PunchRequest) (clock.StatusResponse, error) {
			return clock.StatusResponse{
				User: clock.UserSummary{ID: uuid.NewString(), Name: "Jane Employee"},
				ActiveEntry: &clock.OpenEntry{
					ID:          uuid.NewString(),
					ClockInTime: "2026-03-02T09:00:00Z",
				},
			}, nil
		},
	}
	h := clock.NewHandler(svc)

	w := postJSON(t, h.Status, `{"pin_code":"5678"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "active_entry")
	assert.Contains(t, w.Body.String(), "Jane Employee")
}
