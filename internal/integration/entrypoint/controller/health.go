// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthCheck func() bool
	startedAt     time.Time
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthCheck func() bool) *HealthController {
	return &HealthController{
		dbHealthCheck: dbHealthCheck,
		startedAt:     time.Now().UTC(),
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
}

// Check handles GET /health requests. The endpoint reports degraded with a
// 503 when the database is unreachable.
func (c *HealthController) Check(ctx *gin.Context) {
	status := "healthy"
	database := "up"
	statusCode := http.StatusOK

	if c.dbHealthCheck == nil || !c.dbHealthCheck() {
		status = "degraded"
		database = "down"
		statusCode = http.StatusServiceUnavailable
	}

	ctx.JSON(statusCode, HealthResponse{
		Status:    status,
		Database:  database,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(c.startedAt).Round(time.Second).String(),
	})
}
