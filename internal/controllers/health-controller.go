package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is anything that can check the database is reachable, e.g. *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthController reports whether the service and its database are up
type HealthController struct {
	db          Pinger
	serviceName string
}

// NewHealthController creates a new instance of HealthController
func NewHealthController(db Pinger, serviceName string) *HealthController {
	return &HealthController{db: db, serviceName: serviceName}
}

// HealthCheck handles the health check endpoint
// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthController) HealthCheck(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	status, code := "healthy", http.StatusOK
	if err := h.db.PingContext(pingCtx); err != nil {
		requestLog(ctx).WithError(err).Warn("Database ping failed")
		status, code = "unhealthy", http.StatusServiceUnavailable
	}

	ctx.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   h.serviceName,
	})
}
