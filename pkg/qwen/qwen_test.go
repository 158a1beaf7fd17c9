package qwen_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"poster-events/pkg/qwen"
)

func TestQwen_GenerateContent(t *testing.T) {
	var captured map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" || r.Header.Get("Authorization") != "Bearer qk" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewDecoder(r.Body).Decode(&captured)
		w.Write([]byte(`{
			"model": "qwen-plus",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"events\":[]}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 7, "completion_tokens": 3, "total_tokens": 10}
		}`))
	}))
	defer ts.Close()

	client, err := qwen.New(qwen.Config{APIKey: "qk", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &qwen.Request{
		SystemInstruction: &qwen.Content{Parts: []qwen.Part{{Text: "be strict"}}},
		Messages:          []qwen.Content{{Role: "user", Parts: []qwen.Part{{Text: "poster"}}}},
		JSONOutput:        true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Content.Parts[0].Text != `{"events":[]}` {
		t.Errorf("unexpected text %q", resp.Content.Parts[0].Text)
	}
	if resp.Usage.TotalTokens != 10 {
		t.Errorf("expected 10 tokens, got %d", resp.Usage.TotalTokens)
	}

	msgs := captured["messages"].([]any)
	if len(msgs) != 2 || msgs[0].(map[string]any)["role"] != "system" {
		t.Errorf("expected system message first, got %v", msgs)
	}
	if rf, _ := captured["response_format"].(map[string]any); rf["type"] != "json_object" {
		t.Errorf("expected json_object response format, got %v", captured["response_format"])
	}
}
