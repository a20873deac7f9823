package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/searchgate/backend/internal/models"
)

// HandleHealth reports process liveness. It has no provider dependency and
// always returns 200 while the process is running.
func (h *SearchHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Message:   "Web search gateway is running",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
