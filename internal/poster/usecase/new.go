package usecase

import (
	"time"

	"poster-events/internal/poster"
	"poster-events/pkg/llmprovider"
	pkgLog "poster-events/pkg/log"
	"poster-events/pkg/tesseract"
)

const (
	defaultTimeout   = 90 * time.Second
	defaultMaxTokens = 1024
)

// Config holds pipeline limits.
type Config struct {
	Timeout   time.Duration // bound on the whole pipeline
	MaxTokens int
}

type implUseCase struct {
	l         pkgLog.Logger
	ocr       tesseract.IOCR
	llm       llmprovider.Generator
	timeout   time.Duration
	maxTokens int
}

// New creates a new poster UseCase instance.
func New(l pkgLog.Logger, ocr tesseract.IOCR, llm llmprovider.Generator, cfg Config) poster.UseCase {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	return &implUseCase{
		l:         l,
		ocr:       ocr,
		llm:       llm,
		timeout:   cfg.Timeout,
		maxTokens: cfg.MaxTokens,
	}
}
