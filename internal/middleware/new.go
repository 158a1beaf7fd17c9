package middleware

import "poster-events/pkg/log"

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

type Middleware struct {
	l              log.Logger
	maxUploadBytes int64
}

// Config holds middleware settings.
type Config struct {
	MaxUploadBytes int64 // 0 disables the upload limit
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:              l,
		maxUploadBytes: cfg.MaxUploadBytes,
	}
}
