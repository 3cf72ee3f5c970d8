package utils

import (
	"net/http"

	"puresakura/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler is a middleware that turns panics into a generic JSON 500.
// The panic value is logged, never returned.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, models.MessageResponse{
					Message: "Internal Server Error",
				})
			}
		}()
		c.Next()
	}
}

// JSONMessage sends the {"message": ...} body every booking endpoint answers with.
func JSONMessage(c *gin.Context, status int, message string) {
	c.JSON(status, models.MessageResponse{Message: message})
}

