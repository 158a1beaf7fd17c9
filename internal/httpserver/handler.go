package httpserver

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"poster-events/internal/middleware"
	"poster-events/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, middleware.Config{MaxUploadBytes: srv.maxUploadBytes})

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerWebRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(mw.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.AccessLog())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerWebRoutes serves the page shell and the compiled client assets.
func (srv HTTPServer) registerWebRoutes() {
	ctx := context.Background()

	srv.gin.GET("/api/client-config", srv.clientConfig)

	if len(srv.indexPage) > 0 {
		srv.gin.GET("/", func(c *gin.Context) {
			c.Data(http.StatusOK, "text/html; charset=utf-8", srv.indexPage)
		})
	}

	if srv.staticDir == "" {
		return
	}
	if _, err := os.Stat(srv.staticDir); err != nil {
		srv.l.Warnf(ctx, "Static dir %q not available, browser client disabled: %v", srv.staticDir, err)
		return
	}
	srv.gin.Static("/static", srv.staticDir)
	srv.l.Infof(ctx, "Serving browser client assets from %s", srv.staticDir)
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	return srv.setupPosterDomain(context.Background(), srv.gin.Group("/api"), mw)
}
