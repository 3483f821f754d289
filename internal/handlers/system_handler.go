package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const healthTimeout = 2 * time.Second

type SystemHandler struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewSystemHandler(db *gorm.DB, log *slog.Logger) *SystemHandler {
	return &SystemHandler{db: db, log: log}
}

func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "VELURA Backend Running"})
}

func (h *SystemHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "pong"})
}

// Health reports whether the store answers a ping.
func (h *SystemHandler) Health(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()
		err = sqlDB.PingContext(ctx)
	}

	if err != nil {
		h.log.Warn("health check failed", slog.Any("err", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
