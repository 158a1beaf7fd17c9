package tesseract

import "context"

// IOCR recognises text in an image.
// Implementations are safe for concurrent use; every call uses its own engine instance.
type IOCR interface {
	// Recognize returns the raw text found in image. It returns ctx.Err() when
	// ctx ends before the engine finishes.
	Recognize(ctx context.Context, image []byte) (string, error)
}

// New creates a Tesseract backed recogniser with the given configuration
func New(cfg Config) (IOCR, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newTesseractImpl(cfg, newGosseractEngine), nil
}
