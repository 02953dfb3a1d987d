package handlers

import (
	"net/http"

	"shareit/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last health snapshot of the backing services.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	if !status.CheckedAt.IsZero() && !status.Mongo {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "services": status})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm ShareIt", "services": status})
}
