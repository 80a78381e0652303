package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HelloResponse represents the greeting response
type HelloResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
}

// handleHello handles greeting requests. The reported version is resolved
// from APP_VERSION at startup and never changes for the process lifetime.
func (s *Server) handleHello(c *gin.Context) {
	c.JSON(http.StatusOK, HelloResponse{
		Message: "Hello from my app!",
		Version: s.version,
	})
}

// handleHealth handles health check requests. It performs no dependency
// checks: a served response is the liveness signal.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "healthy",
	})
}
