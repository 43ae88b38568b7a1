package export

import (
	"net/http"

	"go-timeclock/internal/shared/apperror"
	"go-timeclock/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	exporter Exporter
	logger   *zap.Logger
}

func NewHandler(exporter Exporter, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("export.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("export.handler")
	}
	return &Handler{exporter: exporter, logger: l}
}

func (h *Handler) ExportNow(c *gin.Context) {
	path, err := h.exporter.ExportNow(c.Request.Context())
	if err != nil {
		h.logger.Error("manual export failed", zap.Error(err))
		// Wrap so the response carries a stable message instead of the
		// driver error.
		wrapped := apperror.Wrap(err, apperror.CodeInternalError,
			"snapshot export failed", http.StatusInternalServerError)
		httpErr := apperror.ToHTTP(wrapped)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	if path == "" {
		response.Success(c, http.StatusOK, gin.H{
			"exported": false,
			"reason":   "snapshots are only written for sqlite databases",
		}, nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"exported": true, "file": path}, nil)
}
