package deepseek_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"poster-events/pkg/deepseek"
)

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer dk" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": {"message": "invalid api key", "type": "auth"}}`))
			return
		}
		w.Write([]byte(`{
			"id": "x", "model": "deepseek-chat",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "ok"}}],
			"usage": {"prompt_tokens": 1, "completion_tokens": 1, "total_tokens": 2}
		}`))
	}))
	defer ts.Close()

	t.Run("Success", func(t *testing.T) {
		c, err := deepseek.New(deepseek.Config{APIKey: "dk", BaseURL: ts.URL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		req := &deepseek.Request{Messages: []deepseek.Message{{Role: "user", Content: "hi"}}}
		resp, err := c.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Model != deepseek.DefaultModel {
			t.Errorf("expected default model to be filled, got %q", req.Model)
		}
		if resp.Choices[0].Message.Content != "ok" {
			t.Errorf("unexpected content %q", resp.Choices[0].Message.Content)
		}
	})

	t.Run("API Error Message", func(t *testing.T) {
		c, _ := deepseek.New(deepseek.Config{APIKey: "wrong", BaseURL: ts.URL})
		_, err := c.GenerateContent(context.Background(), &deepseek.Request{})
		if err == nil || !strings.Contains(err.Error(), "invalid api key") {
			t.Fatalf("expected API error message, got %v", err)
		}
	})

	t.Run("Missing Key", func(t *testing.T) {
		if _, err := deepseek.New(deepseek.Config{}); err == nil {
			t.Fatal("expected error")
		}
	})
}
