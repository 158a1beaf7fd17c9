package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"poster-events/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Poster events API"
	HealthVersion = "1.0.0"
	ServiceName   = "poster-events"
)

type healthResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
	Service string `json:"service"`
}

func newHealthResp(status string) healthResp {
	return healthResp{
		Status:  status,
		Message: HealthMessage,
		Version: HealthVersion,
		Service: ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, newHealthResp("healthy"))
}

// readyCheck reports ready once the extraction pipeline is wired.
// @Summary Readiness Check
// @Description Check if the API is ready to accept poster uploads
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is ready"
// @Failure 503 {object} healthResp "Extraction pipeline not configured"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.posterUC == nil {
		c.JSON(http.StatusServiceUnavailable, newHealthResp("not ready"))
		return
	}
	response.OK(c, newHealthResp("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, newHealthResp("alive"))
}
