package setting

import (
	"net/http"

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
	l := zap.L().Named("setting.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("setting.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("setting request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	recipient, body := h.service.ReportTemplate(ctx)
	res := SettingsResponse{
		WeekStartDay:    h.service.WeekStartDay(ctx),
		Timezone:        h.service.Timezone(ctx),
		ReportRecipient: recipient,
		ReportBody:      body,
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) UpdateWeekStart(c *gin.Context) {
	var req UpdateWeekStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, http.StatusBadRequest, mapped.Code, mapped.Message, nil)
		return
	}

	if err := h.service.SetWeekStartDay(c.Request.Context(), *req.WeekStartDay); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"weekStartDay": *req.WeekStartDay}, nil)
}

func (h *Handler) UpdateTimezone(c *gin.Context) {
	var req UpdateTimezoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, http.StatusBadRequest, mapped.Code, mapped.Message, nil)
		return
	}

	if err := h.service.SetTimezone(c.Request.Context(), req.Timezone); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"timezone": req.Timezone}, nil)
}

func (h *Handler) UpdateReportTemplate(c *gin.Context) {
	var req UpdateReportTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, http.StatusBadRequest, mapped.Code, mapped.Message, nil)
		return
	}

	if err := h.service.SetReportTemplate(c.Request.Context(), req.Recipient, req.Body); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": true}, nil)
}
