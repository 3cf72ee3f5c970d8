package routes

import (
	"puresakura/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the booking form endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/book", hb.Book)
		api.GET("/catalog", hb.GetCatalog)
	}
}
