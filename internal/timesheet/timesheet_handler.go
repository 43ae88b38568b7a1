package timesheet

import (
	"net/http"
	"strconv"

	"go-timeclock/internal/shared/apperror"
	"go-timeclock/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("timesheet.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timesheet.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("timesheet request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// pageBounds reads ?page and ?page_size and clamps them to the result set.
func pageBounds(c *gin.Context, length int) (int, int, response.PaginationMeta) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	if pageSize < 1 {
		pageSize = 50
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > length {
		start = length
	}
	if end > length {
		end = length
	}

	return start, end, response.NewPaginationMeta(int64(length), page, pageSize)
}

func (h *Handler) ListEntries(c *gin.Context) {
	resp, err := h.service.ListEntries(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	start, end, meta := pageBounds(c, len(resp))
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) ListAudits(c *gin.Context) {
	resp, err := h.service.ListAudits(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	start, end, meta := pageBounds(c, len(resp))
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) EditEntry(c *gin.Context) {
	entryID := c.Param("id")
	editorID := c.GetString("user_id")

	var req EditEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, http.StatusBadRequest, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.EditEntry(c.Request.Context(), entryID, editorID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
