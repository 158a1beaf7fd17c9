package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"poster-events/internal/poster"
	"poster-events/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Web client
	indexPage []byte
	staticDir string
	calendar  CalendarSettings

	// Poster domain
	posterUC       poster.UseCase
	maxUploadBytes int64
}

// CalendarSettings are handed to the browser client for .ics export.
type CalendarSettings struct {
	Name      string
	Timezone  string
	ProductID string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// Web client
	IndexPage []byte
	StaticDir string // empty disables /static
	Calendar  CalendarSettings

	// Poster domain
	PosterUseCase  poster.UseCase
	MaxUploadBytes int64
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		indexPage:       cfg.IndexPage,
		staticDir:       cfg.StaticDir,
		calendar:        cfg.Calendar,
		posterUC:        cfg.PosterUseCase,
		maxUploadBytes:  cfg.MaxUploadBytes,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.posterUC == nil {
		return errors.New("poster use case is required")
	}
	return nil
}
