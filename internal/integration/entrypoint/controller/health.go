// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController reports liveness for the API and its database.
type HealthController struct {
	pingDatabase func() bool
}

// HealthResponse is the body of a health check.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a health controller around a database ping.
func NewHealthController(pingDatabase func() bool) *HealthController {
	return &HealthController{pingDatabase: pingDatabase}
}

// Check handles GET /health requests. The endpoint itself always answers 200;
// a broken database shows up in the body, not the status code.
func (h *HealthController) Check(c *gin.Context) {
	database := "disconnected"
	if h.pingDatabase != nil && h.pingDatabase() {
		database = "connected"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Database:  database,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
