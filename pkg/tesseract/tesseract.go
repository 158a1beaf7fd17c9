package tesseract

import (
	"context"
	"errors"
	"fmt"

	"github.com/otiai10/gosseract/v2"
	"golang.org/x/sync/semaphore"
)

func newTesseractImpl(cfg Config, newEngine func() engine) *tesseractImpl {
	return &tesseractImpl{
		cfg:       cfg,
		newEngine: newEngine,
		engines:   semaphore.NewWeighted(int64(cfg.MaxEngines)),
	}
}

// Recognize runs one engine instance in a worker goroutine. The worker owns the
// engine and closes it on every path, including after the caller has given up.
// At most MaxEngines engines exist at once, counting those still finishing for
// callers that already left; a call that cannot get a slot before its deadline
// fails without creating one.
func (t *tesseractImpl) Recognize(ctx context.Context, image []byte) (string, error) {
	if len(image) == 0 {
		return "", errors.New("tesseract: empty image")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, t.cfg.Timeout)
	defer cancel()

	if err := t.engines.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("tesseract: no free engine: %w", err)
	}

	done := make(chan result, 1)
	go func() {
		defer t.engines.Release(1)
		text, err := t.run(image)
		done <- result{text: text, err: err}
	}()

	select {
	case res := <-done:
		return res.text, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (t *tesseractImpl) run(image []byte) (text string, err error) {
	e := t.newEngine()
	defer func() {
		if cerr := e.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("tesseract: close: %w", cerr)
		}
	}()

	if t.cfg.TessdataPrefix != "" {
		if err := e.SetTessdataPrefix(t.cfg.TessdataPrefix); err != nil {
			return "", fmt.Errorf("tesseract: tessdata prefix: %w", err)
		}
	}
	if err := e.SetLanguage(t.cfg.Languages...); err != nil {
		return "", fmt.Errorf("tesseract: language: %w", err)
	}
	if err := e.SetPageSegMode(t.cfg.PageSegMode); err != nil {
		return "", fmt.Errorf("tesseract: page seg mode: %w", err)
	}
	if err := e.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("tesseract: load image: %w", err)
	}

	text, err = e.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract: recognize: %w", err)
	}
	return text, nil
}

// gosseractEngine adapts *gosseract.Client to engine.
type gosseractEngine struct {
	*gosseract.Client
}

func newGosseractEngine() engine {
	return gosseractEngine{Client: gosseract.NewClient()}
}

func (g gosseractEngine) SetPageSegMode(mode int) error {
	return g.Client.SetPageSegMode(gosseract.PageSegMode(mode))
}
