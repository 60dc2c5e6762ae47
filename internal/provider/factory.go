package provider

import (
	"fmt"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/config"
)

// NewFromConfig builds the provider named by the configuration.
func NewFromConfig(cfg config.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case "google", "gemini":
		return NewGeminiProvider(cfg.Gemini.APIKey, cfg.Gemini.Model)
	case "openai":
		return NewOpenAIProvider(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)
	case "ollama":
		return NewOllamaProvider(cfg.Ollama.Host, cfg.Ollama.Model)
	case "stub":
		return NewStubProvider(), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
}
