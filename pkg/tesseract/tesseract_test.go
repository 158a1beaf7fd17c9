package tesseract

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type fakeEngine struct {
	mu       sync.Mutex
	text     string
	err      error
	block    chan struct{}
	langs    []string
	psm      int
	prefix   string
	closed   bool
	closedCh chan struct{}
}

func (f *fakeEngine) SetTessdataPrefix(prefix string) error { f.prefix = prefix; return nil }
func (f *fakeEngine) SetLanguage(langs ...string) error     { f.langs = langs; return nil }
func (f *fakeEngine) SetPageSegMode(mode int) error         { f.psm = mode; return nil }
func (f *fakeEngine) SetImageFromBytes(data []byte) error   { return nil }

func (f *fakeEngine) Text() (string, error) {
	if f.block != nil {
		<-f.block
	}
	return f.text, f.err
}

func (f *fakeEngine) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	if f.closedCh != nil {
		close(f.closedCh)
	}
	return nil
}

func (f *fakeEngine) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func newTestOCR(t *testing.T, cfg Config, e *fakeEngine) IOCR {
	t.Helper()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	return newTesseractImpl(cfg, func() engine { return e })
}

func TestRecognize_Success(t *testing.T) {
	e := &fakeEngine{text: "КОНЦЕРТ 1 мая 19:30"}
	ocr := newTestOCR(t, Config{TessdataPrefix: "/tessdata"}, e)

	text, err := ocr.Recognize(context.Background(), []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if text != e.text {
		t.Errorf("Recognize() = %q, want %q", text, e.text)
	}
	if !e.isClosed() {
		t.Error("expected engine to be closed")
	}
	if len(e.langs) != 1 || e.langs[0] != DefaultLanguage || e.psm != DefaultPageSegMode || e.prefix != "/tessdata" {
		t.Errorf("unexpected engine setup: langs=%v psm=%d prefix=%q", e.langs, e.psm, e.prefix)
	}
}

func TestRecognize_EngineError(t *testing.T) {
	e := &fakeEngine{err: errors.New("boom")}
	ocr := newTestOCR(t, Config{}, e)

	if _, err := ocr.Recognize(context.Background(), []byte{1}); err == nil {
		t.Fatal("expected error")
	}
	if !e.isClosed() {
		t.Error("expected engine to be closed after failure")
	}
}

func TestRecognize_EmptyImage(t *testing.T) {
	ocr := newTestOCR(t, Config{}, &fakeEngine{})
	if _, err := ocr.Recognize(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty image")
	}
}

func TestRecognize_ContextCanceled(t *testing.T) {
	e := &fakeEngine{block: make(chan struct{}), closedCh: make(chan struct{})}
	ocr := newTestOCR(t, Config{}, e)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := ocr.Recognize(ctx, []byte{1})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Recognize() error = %v, want context.Canceled", err)
	}

	// The worker still releases the engine once recognition returns.
	close(e.block)
	select {
	case <-e.closedCh:
	case <-time.After(time.Second):
		t.Fatal("engine was not closed after cancellation")
	}
}

func TestRecognize_Timeout(t *testing.T) {
	e := &fakeEngine{block: make(chan struct{})}
	defer close(e.block)
	ocr := newTestOCR(t, Config{Timeout: 10 * time.Millisecond}, e)

	_, err := ocr.Recognize(context.Background(), []byte{1})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Recognize() error = %v, want context.DeadlineExceeded", err)
	}
}

func TestRecognize_EngineCapSaturated(t *testing.T) {
	e := &fakeEngine{block: make(chan struct{}), closedCh: make(chan struct{})}
	cfg := Config{Timeout: 20 * time.Millisecond, MaxEngines: 1}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	var created atomic.Int32
	ocr := newTesseractImpl(cfg, func() engine {
		created.Add(1)
		return e
	})

	// The first call times out but its engine keeps running and holds the only slot.
	if _, err := ocr.Recognize(context.Background(), []byte{1}); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Recognize() error = %v, want context.DeadlineExceeded", err)
	}

	_, err := ocr.Recognize(context.Background(), []byte{1})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Recognize() with saturated cap error = %v, want context.DeadlineExceeded", err)
	}
	if n := created.Load(); n != 1 {
		t.Errorf("engines created = %d, want 1", n)
	}

	// Once the abandoned engine finishes its slot is free again.
	close(e.block)
	select {
	case <-e.closedCh:
	case <-time.After(time.Second):
		t.Fatal("engine was not closed")
	}
	e.mu.Lock()
	e.closedCh = nil
	e.mu.Unlock()

	deadline := time.Now().Add(time.Second)
	for {
		_, err := ocr.Recognize(context.Background(), []byte{1})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("Recognize() after release error = %v", err)
		}
		time.Sleep(5 * time.Millisecond)
	}
	if n := created.Load(); n < 2 {
		t.Errorf("engines created = %d, want a new engine after release", n)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{PageSegMode: 14}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for out of range page seg mode")
	}

	cfg = Config{Languages: []string{"rus", ""}}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty language")
	}

	cfg = Config{MaxEngines: -1}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative max engines")
	}

	cfg = Config{}
	if err := cfg.Validate(); err != nil || cfg.MaxEngines != DefaultMaxEngines {
		t.Errorf("Validate() = %v, MaxEngines = %d", err, cfg.MaxEngines)
	}
}
