package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReachabilityChecker reporta si el servicio de clasificacion responde.
type ReachabilityChecker interface {
	CheckReachable(ctx context.Context) bool
}

// HealthHandler mantiene dependencias para el health check.
type HealthHandler struct {
	logger  *zap.Logger
	checker ReachabilityChecker
	dbPing  func(ctx context.Context) error
}

// NewHealthHandler crea una instancia de HealthHandler.
func NewHealthHandler(logger *zap.Logger, checker ReachabilityChecker, dbPing func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		checker: checker,
		dbPing:  dbPing,
	}
}

// Health maneja GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	aiStatus := "disconnected"
	if h.checker != nil && h.checker.CheckReachable(ctx) {
		aiStatus = "connected"
	}

	dbStatus := "connected"
	if h.dbPing != nil {
		if err := h.dbPing(ctx); err != nil {
			h.logger.Warn("health db ping failed", zap.Error(err))
			dbStatus = "disconnected"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          "healthy",
		"message":         "MindVibe backend is running",
		"ai_api_status":   aiStatus,
		"database_status": dbStatus,
	})
}
