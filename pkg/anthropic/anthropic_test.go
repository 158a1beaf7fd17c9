package anthropic_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"poster-events/pkg/anthropic"
)

func TestAnthropic_GenerateContent(t *testing.T) {
	var captured map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messages" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("x-api-key") != "ak" || r.Header.Get("anthropic-version") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"type": "error", "error": {"type": "authentication_error", "message": "invalid x-api-key"}}`))
			return
		}
		json.NewDecoder(r.Body).Decode(&captured)
		w.Write([]byte(`{
			"id": "msg_1", "type": "message", "role": "assistant", "model": "claude-3-haiku-20240307",
			"content": [{"type": "text", "text": "{\"events\": "}, {"type": "text", "text": "[]}"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 20, "output_tokens": 5}
		}`))
	}))
	defer ts.Close()

	t.Run("Single Exchange", func(t *testing.T) {
		client, err := anthropic.New(anthropic.Config{APIKey: "ak", BaseURL: ts.URL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		resp, err := client.GenerateContent(context.Background(), &anthropic.Request{
			Messages: []anthropic.Message{{Role: "user", Text: "poster text"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if resp.Text != `{"events": []}` {
			t.Errorf("expected joined text blocks, got %q", resp.Text)
		}
		if resp.Usage.InputTokens != 20 || resp.Usage.OutputTokens != 5 {
			t.Errorf("unexpected usage %+v", resp.Usage)
		}
		if captured["max_tokens"].(float64) != anthropic.DefaultMaxTokens {
			t.Errorf("expected default max_tokens, got %v", captured["max_tokens"])
		}
		if captured["model"] != anthropic.DefaultModel {
			t.Errorf("expected default model, got %v", captured["model"])
		}
		if _, ok := captured["temperature"]; ok {
			t.Errorf("temperature should be omitted when unset")
		}
	})

	t.Run("API Error", func(t *testing.T) {
		client, _ := anthropic.New(anthropic.Config{APIKey: "bad", BaseURL: ts.URL})
		_, err := client.GenerateContent(context.Background(), &anthropic.Request{
			Messages: []anthropic.Message{{Role: "user", Text: "x"}},
		})
		if err == nil || !strings.Contains(err.Error(), "authentication_error") {
			t.Fatalf("expected classified API error, got %v", err)
		}
	})
}
