package usecase

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"

	"poster-events/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock OCR engine
type mockOCR struct {
	text  string
	err   error
	calls int
	wait  bool // block until ctx is done
}

func (m *mockOCR) Recognize(ctx context.Context, image []byte) (string, error) {
	m.calls++
	if m.wait {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return m.text, m.err
}

// Mock LLM generator
type mockLLM struct {
	reply string
	err   error
	calls int
	req   *llmprovider.Request
}

func (m *mockLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.req = req
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  llmprovider.RoleAssistant,
			Parts: []llmprovider.Part{{Text: m.reply}},
		},
		ProviderName: "mock",
	}, nil
}

func pngImage(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 32, 16))); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}
