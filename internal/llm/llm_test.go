package llm

import (
	"errors"
	"testing"
)

func TestNewProvider_DefaultGroqBaseURL(t *testing.T) {
	provider, err := NewProvider(Config{Provider: "groq", APIKey: "k", Model: "m"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	openAI, ok := provider.(*OpenAIProvider)
	if !ok {
		t.Fatalf("expected *OpenAIProvider, got %T", provider)
	}
	if openAI.baseURL != "https://api.groq.com/openai/v1" {
		t.Errorf("expected Groq base URL, got %s", openAI.baseURL)
	}
}

func TestNewProvider_EmptyDefaultsToGroq(t *testing.T) {
	provider, err := NewProvider(Config{APIKey: "k", Model: "m"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.(*OpenAIProvider).baseURL != "https://api.groq.com/openai/v1" {
		t.Error("expected empty provider name to default to Groq")
	}
}

func TestNewProvider_OpenRouter(t *testing.T) {
	provider, err := NewProvider(Config{Provider: "openrouter", APIKey: "k", Model: "m"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.(*OpenAIProvider).baseURL != "https://openrouter.ai/api/v1" {
		t.Error("expected OpenRouter base URL")
	}
}

func TestNewProvider_BaseURLOverride(t *testing.T) {
	provider, err := NewProvider(Config{Provider: "groq", APIKey: "k", Model: "m", BaseURL: "http://localhost:9999/v1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.(*OpenAIProvider).baseURL != "http://localhost:9999/v1" {
		t.Error("expected explicit base URL to win over the provider default")
	}
}

func TestNewProvider_Unsupported(t *testing.T) {
	_, err := NewProvider(Config{Provider: "carrier-pigeon"})
	var unsupported ErrUnsupportedProvider
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected ErrUnsupportedProvider, got %v", err)
	}
	if unsupported.Provider != "carrier-pigeon" {
		t.Errorf("unexpected provider in error: %s", unsupported.Provider)
	}
}
