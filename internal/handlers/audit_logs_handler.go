package handlers

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/parlour-booking/internal/audit"
	"github.com/BruksfildServices01/parlour-booking/internal/httperr"
	"github.com/BruksfildServices01/parlour-booking/internal/httpresp"
	"github.com/BruksfildServices01/parlour-booking/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
	log  *slog.Logger
}

func NewAuditLogsHandler(logs *audit.Logger, log *slog.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, log: log}
}

type AuditLogsResponse struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}

	// --------------------------------------------------
	// Optional date range
	// --------------------------------------------------

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			httperr.BadRequest(c, httperr.ErrValidation.Code, "from must match 2006-01-02")
			return
		}
		f.From = &from
	}

	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			httperr.BadRequest(c, httperr.ErrValidation.Code, "to must match 2006-01-02")
			return
		}
		f.To = &to
	}

	f.Normalize()

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	httpresp.OK(c, AuditLogsResponse{
		Page:  f.Page,
		Limit: f.Limit,
		Total: total,
		Logs:  logs,
	})
}
