package http

import (
	"github.com/gin-gonic/gin"

	"poster-events/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The upload route is capped by the body limit middleware.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/process", mw.LimitUploadSize(), h.Process)
}
