package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CarlosL15/AutomationWebApp/internal/server/http/dto"
)

// Health handles GET /health. It reports process liveness and does not
// touch the database.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy"})
}
