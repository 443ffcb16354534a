package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Healthz reports liveness for load balancers and uptime checks.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "version": "2.0.0"})
}
