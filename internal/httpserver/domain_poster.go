package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"poster-events/internal/middleware"
	posterHTTP "poster-events/internal/poster/delivery/http"
)

// setupPosterDomain wires the poster HTTP handler and registers POST /api/process.
func (srv HTTPServer) setupPosterDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := posterHTTP.New(srv.l, srv.posterUC)
	posterHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Poster domain registered at POST /api/process (upload limit %d bytes)", srv.maxUploadBytes)
	return nil
}
