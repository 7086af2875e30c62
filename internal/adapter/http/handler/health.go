package handler

import (
	"context"
	"net/http"
	"time"

	"iso-evidence-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// HealthCheck returns a handler that pings every dependency and reports
// per-component status. Any failing component degrades the overall status
// and yields a 503.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		overall := "healthy"
		components := gin.H{}
		for _, checker := range checkers {
			if err := checker.Ping(ctx); err != nil {
				overall = "degraded"
				components[checker.Name()] = gin.H{"status": "down", "error": err.Error()}
				continue
			}
			components[checker.Name()] = gin.H{"status": "up"}
		}

		status := http.StatusOK
		if overall != "healthy" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"status":     overall,
			"components": components,
			"time":       time.Now().UTC().Format(time.RFC3339),
		})
	}
}
