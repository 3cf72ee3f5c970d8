package handlers

import (
	"net/http"

	"puresakura/utils"

	"github.com/gin-gonic/gin"
)

// GetCatalog handles GET /api/catalog: the treatments, durations and time
// slots the booking form offers.
func (h *BookingHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.BookingService.Catalog())
}

// Health handles GET /health with the latest spreadsheet probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"message":     "Hi, I'm Pure Sakura",
		"spreadsheet": utils.GetHealthStatus(),
	})
}
