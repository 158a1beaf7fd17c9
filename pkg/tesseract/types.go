package tesseract

import (
	"fmt"
	"time"

	"golang.org/x/sync/semaphore"
)

// Config holds OCR engine configuration
type Config struct {
	Languages      []string
	TessdataPrefix string // empty = engine default
	PageSegMode    int
	Timeout        time.Duration
	MaxEngines     int // engines alive at once, 0 = DefaultMaxEngines
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if len(c.Languages) == 0 {
		c.Languages = []string{DefaultLanguage}
	}
	for _, l := range c.Languages {
		if l == "" {
			return fmt.Errorf("tesseract: empty language code")
		}
	}
	if c.PageSegMode < 0 || c.PageSegMode > 13 {
		return fmt.Errorf("tesseract: page segmentation mode %d out of range", c.PageSegMode)
	}
	if c.PageSegMode == 0 {
		c.PageSegMode = DefaultPageSegMode
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxEngines < 0 {
		return fmt.Errorf("tesseract: max engines must not be negative")
	}
	if c.MaxEngines == 0 {
		c.MaxEngines = DefaultMaxEngines
	}
	return nil
}

// engine is the subset of the gosseract client used per recognition.
type engine interface {
	SetTessdataPrefix(prefix string) error
	SetLanguage(langs ...string) error
	SetPageSegMode(mode int) error
	SetImageFromBytes(data []byte) error
	Text() (string, error)
	Close() error
}

type tesseractImpl struct {
	cfg       Config
	newEngine func() engine
	engines   *semaphore.Weighted
}

type result struct {
	text string
	err  error
}
