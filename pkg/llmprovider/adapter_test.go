package llmprovider

import (
	"context"
	"testing"

	"poster-events/pkg/anthropic"
	"poster-events/pkg/deepseek"
	"poster-events/pkg/gemini"
)

type mockAnthropicClient struct {
	got *anthropic.Request
}

func (m *mockAnthropicClient) GenerateContent(ctx context.Context, req *anthropic.Request) (*anthropic.Response, error) {
	m.got = req
	return &anthropic.Response{Text: "reply", Usage: &anthropic.Usage{InputTokens: 3, OutputTokens: 2}}, nil
}

func (m *mockAnthropicClient) Model() string { return "claude-test" }

type mockGeminiClient struct {
	got *gemini.Request
}

func (m *mockGeminiClient) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	m.got = req
	return &gemini.Response{Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: "reply"}}}}, nil
}

func (m *mockGeminiClient) Model() string { return "gemini-test" }

type mockDeepSeekClient struct {
	got *deepseek.Request
}

func (m *mockDeepSeekClient) GenerateContent(ctx context.Context, req *deepseek.Request) (*deepseek.Response, error) {
	m.got = req
	return &deepseek.Response{Model: "deepseek-chat", Choices: []deepseek.Choice{{Message: deepseek.Message{Role: "assistant", Content: "reply"}}}}, nil
}

func (m *mockDeepSeekClient) Model() string { return "deepseek-chat" }

func TestAdapters(t *testing.T) {
	req := &Request{
		SystemInstruction: &Message{Parts: []Part{{Text: "system rules"}}},
		Messages:          []Message{{Role: RoleUser, Parts: []Part{{Text: "poster"}}}},
		MaxTokens:         512,
		JSONOutput:        true,
	}

	t.Run("Anthropic", func(t *testing.T) {
		client := &mockAnthropicClient{}
		resp, err := NewAnthropicAdapter(client).GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client.got.System != "system rules" || client.got.MaxTokens != 512 {
			t.Errorf("unexpected request %+v", client.got)
		}
		if resp.Text() != "reply" || resp.Usage.TotalTokens != 5 {
			t.Errorf("unexpected response %+v", resp)
		}
	})

	t.Run("Gemini", func(t *testing.T) {
		client := &mockGeminiClient{}
		resp, err := NewGeminiAdapter(client).GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !client.got.JSONOutput || client.got.SystemInstruction == nil {
			t.Errorf("expected JSON output and system instruction to be forwarded")
		}
		if resp.Text() != "reply" || resp.Usage == nil {
			t.Errorf("unexpected response %+v", resp)
		}
	})

	t.Run("DeepSeek", func(t *testing.T) {
		client := &mockDeepSeekClient{}
		resp, err := NewDeepSeekAdapter(client).GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(client.got.Messages) != 2 || client.got.Messages[0].Role != RoleSystem {
			t.Errorf("expected system message first, got %+v", client.got.Messages)
		}
		if client.got.ResponseFormat == nil || client.got.ResponseFormat.Type != "json_object" {
			t.Errorf("expected json_object response format")
		}
		if resp.Text() != "reply" {
			t.Errorf("unexpected response text %q", resp.Text())
		}
	})
}
