// File: puresakura/handlers/bundle.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking endpoints
	Book       gin.HandlerFunc
	GetCatalog gin.HandlerFunc

	// Operational endpoints
	Health  gin.HandlerFunc
	Metrics http.Handler

	// Fallback for unregistered methods on known paths
	MethodNotAllowed gin.HandlerFunc
}
