// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its dependencies.
// A failing database ping degrades the response to 503.
func (h *HealthController) Check(c *gin.Context) {
	status := "ok"
	dbStatus := "connected"
	code := http.StatusOK
	if h.dbHealthChecker == nil || !h.dbHealthChecker() {
		status = "degraded"
		dbStatus = "disconnected"
		code = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Database:  dbStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(code, response)
}

// Root handles GET / requests with a welcome message.
func (h *HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Expense Tracker API"})
}
