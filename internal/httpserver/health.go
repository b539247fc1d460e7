package httpserver

import (
	"github.com/gin-gonic/gin"

	"personal-fitness-trainer/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Personalized Fitness Trainer"
	HealthVersion = "1.0.0"
	ServiceName   = "personal-fitness-trainer"
)

// reportStatus writes the service identity with the given probe state.
func (srv HTTPServer) reportStatus(c *gin.Context, state string) {
	response.OK(c, gin.H{
		"status":      state,
		"message":     HealthMessage,
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	srv.reportStatus(c, "healthy")
}

// readyCheck handles readiness check; returns ready if server is up.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	srv.reportStatus(c, "ready")
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	srv.reportStatus(c, "alive")
}
