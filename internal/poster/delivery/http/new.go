package http

import (
	"github.com/gin-gonic/gin"

	"poster-events/internal/poster"
	"poster-events/pkg/log"
)

// Handler is the public interface for the poster HTTP delivery layer.
type Handler interface {
	Process(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc poster.UseCase
}

// New creates a new HTTP handler for the poster domain.
func New(l log.Logger, uc poster.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
