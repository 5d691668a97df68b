package llm

import (
	"testing"
)

func TestNewService_MissingAPIKey(t *testing.T) {
	cfg := &Config{
		Provider: "groq",
		Model:    "llama-3.3-70b-versatile",
	}

	_, err := NewService(cfg)
	if err == nil {
		t.Error("NewService() without API key should return error")
	}
}

func TestNewService_GroqDefaults(t *testing.T) {
	cfg := &Config{
		Provider: "groq",
		Model:    "llama-3.3-70b-versatile",
		APIKey:   "test-key",
	}

	svc, err := NewService(cfg)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	if svc == nil {
		t.Fatal("NewService() returned nil service")
	}
}

func TestNewService_OllamaWithoutKey(t *testing.T) {
	cfg := &Config{
		Provider: "ollama",
		Model:    "llama3.1",
	}

	svc, err := NewService(cfg)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	if svc == nil {
		t.Fatal("NewService() returned nil service")
	}
}

func TestNewService_GenericProviderRequiresBaseURL(t *testing.T) {
	cfg := &Config{
		Provider: "custom",
		Model:    "some-model",
		APIKey:   "test-key",
	}

	_, err := NewService(cfg)
	if err == nil {
		t.Error("NewService() with generic provider and no base URL should return error")
	}

	cfg.BaseURL = "https://llm.internal/v1"
	svc, err := NewService(cfg)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	if svc == nil {
		t.Fatal("NewService() returned nil service")
	}
}

func TestConvertMessages(t *testing.T) {
	messages := []Message{
		SystemPrompt("be helpful"),
		UserMessage("hello"),
		{Role: "assistant", Content: "hi"},
		{Role: "tool", Content: "unknown roles degrade to user"},
	}

	converted := convertMessages(messages)
	if len(converted) != 4 {
		t.Fatalf("convertMessages() length = %d, want 4", len(converted))
	}

	wantRoles := []string{"system", "user", "assistant", "user"}
	for i, want := range wantRoles {
		if converted[i].Role != want {
			t.Errorf("converted[%d].Role = %q, want %q", i, converted[i].Role, want)
		}
	}
}
