package timesheet_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-timeclock/internal/timesheet"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimesheetService struct {
	entries []timesheet.EntryResponse
	audits  []timesheet.AuditResponse
}

func (f *fakeTimesheetService) ListEntries(ctx context.Context) ([]timesheet.EntryResponse, error) {
	return f.entries, nil
}

func (f *fakeTimesheetService) ListAudits(ctx context.Context) ([]timesheet.AuditResponse, error) {
	return f.audits, nil
}

func (f *fakeTimesheetService) EditEntry(ctx context.Context, entryID, editorID string, req timesheet.EditEntryRequest) (timesheet.EntryResponse, error) {
	return timesheet.EntryResponse{}, nil
}

type entryListEnvelope struct {
	Ok   bool                      `json:"ok"`
	Data []timesheet.EntryResponse `json:"data"`
	Meta struct {
		Total      int64 `json:"total"`
		TotalPages int   `json:"totalPages"`
		Page       int   `json:"page"`
		PageSize   int   `json:"pageSize"`
	} `json:"meta"`
}

func TestHandler_ListEntries_Pagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	entries := make([]timesheet.EntryResponse, 120)
	for i := range entries {
		entries[i] = timesheet.EntryResponse{ID: fmt.Sprintf("entry-%03d", i)}
	}
	h := timesheet.NewHandler(&fakeTimesheetService{entries: entries})

	router := gin.New()
	router.GET("/entries", h.ListEntries)

	get := func(path string) (int, entryListEnvelope) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, r)

		var body entryListEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return w.Code, body
	}

	t.Run("defaults", func(t *testing.T) {
		code, body := get("/entries")
		assert.Equal(t, http.StatusOK, code)
		assert.True(t, body.Ok)
		assert.Len(t, body.Data, 50)
		assert.Equal(t, "entry-000", body.Data[0].ID)
		assert.Equal(t, int64(120), body.Meta.Total)
		assert.Equal(t, 3, body.Meta.TotalPages)
		assert.Equal(t, 1, body.Meta.Page)
		assert.Equal(t, 50, body.Meta.PageSize)
	})

	t.Run("second page", func(t *testing.T) {
		_, body := get("/entries?page=2&page_size=50")
		assert.Len(t, body.Data, 50)
		assert.Equal(t, "entry-050", body.Data[0].ID)
		assert.Equal(t, 2, body.Meta.Page)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		_, body := get("/entries?page=9&page_size=50")
		assert.Empty(t, body.Data)
		assert.Equal(t, int64(120), body.Meta.Total)
	})

	t.Run("garbage params fall back to defaults", func(t *testing.T) {
		_, body := get("/entries?page=banana&page_size=-5")
		assert.Len(t, body.Data, 50)
		assert.Equal(t, 1, body.Meta.Page)
		assert.Equal(t, 50, body.Meta.PageSize)
	})
}

func TestHandler_ListAudits_Pagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	audits := make([]timesheet.AuditResponse, 3)
	for i := range audits {
		audits[i] = timesheet.AuditResponse{ID: fmt.Sprintf("audit-%d", i)}
	}
	h := timesheet.NewHandler(&fakeTimesheetService{audits: audits})

	router := gin.New()
	router.GET("/audits", h.ListAudits)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audits?page=1&page_size=2", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "audit-0")
	assert.Contains(t, w.Body.String(), "audit-1")
	assert.NotContains(t, w.Body.String(), "audit-2")
	assert.Contains(t, w.Body.String(), `"totalPages":2`)
}
