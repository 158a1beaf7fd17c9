package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"poster-events/config"
	_ "poster-events/docs" // Swagger docs
	"poster-events/internal/httpserver"
	"poster-events/internal/poster/usecase"
	"poster-events/pkg/llmprovider"
	"poster-events/pkg/log"
	"poster-events/pkg/tesseract"
	"poster-events/web"
)

// @title       Poster Events API
// @description Upload an event poster, get back the events it advertises as editable JSON.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Poster Events...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		os.Exit(1)
	}

	var maxTotalTimeout time.Duration
	if cfg.LLM.MaxTotalTimeout != "" {
		maxTotalTimeout, _ = time.ParseDuration(cfg.LLM.MaxTotalTimeout) // validated by config.Load
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		MaxTotalTimeout: maxTotalTimeout,
	}, logger)
	logger.Infof(ctx, "LLM: %d provider(s), primary %s (%s), fallback=%v",
		len(providers), manager.Primary().Name(), manager.Primary().Model(), cfg.LLM.FallbackEnabled)

	// 4. OCR
	ocr, err := tesseract.New(tesseract.Config{
		Languages:      cfg.OCR.Languages,
		TessdataPrefix: cfg.OCR.TessdataPrefix,
		PageSegMode:    cfg.OCR.PageSegMode,
		Timeout:        cfg.OCR.Timeout,
		MaxEngines:     cfg.OCR.MaxEngines,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize OCR: ", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "OCR: languages=%v, max engines=%d", cfg.OCR.Languages, cfg.OCR.MaxEngines)

	// 5. Poster UseCase
	posterUC := usecase.New(logger, ocr, manager, usecase.Config{
		Timeout:   cfg.Extraction.Timeout,
		MaxTokens: cfg.Extraction.MaxTokens,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		IndexPage:      web.Index,
		StaticDir:      cfg.Web.StaticDir,
		Calendar: httpserver.CalendarSettings{
			Name:      cfg.Calendar.Name,
			Timezone:  cfg.Calendar.Timezone,
			ProductID: cfg.Calendar.ProductID,
		},
		PosterUseCase:  posterUC,
		MaxUploadBytes: int64(cfg.HTTPServer.MaxUploadMB) << 20,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
