package profile

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Profile is configuration to start the main server.
type Profile struct {
	// Unified LLM configuration (OpenAI-compatible protocol)
	// All providers (groq, openai, openrouter, ollama) use the same config.
	LLMProvider    string  // Provider identifier: groq, openai, openrouter, ollama
	LLMAPIKey      string  // API key for the chat-completions endpoint
	LLMBaseURL     string  // Base URL (optional, has default per provider)
	LLMModel       string  // Default model, overridable per request from the UI
	LLMMaxTokens   int     // Completion token cap (default: 4000)
	LLMTemperature float32 // Sampling temperature (default: 0.3)
	LLMTimeout     int     // LLM request timeout in seconds (default: 120)

	Mode        string // dev, demo, prod
	Addr        string
	Port        int
	InstanceURL string
	Version     string
}

// Provider default configurations for the LLM endpoint.
// Used when BWASSIST_AI_LLM_BASE_URL / _MODEL are not explicitly set.
var llmProviderDefaults = map[string]struct {
	BaseURL string
	Model   string
}{
	"groq": {
		BaseURL: "https://api.groq.com/openai/v1",
		Model:   "llama-3.3-70b-versatile",
	},
	"openai": {
		BaseURL: "https://api.openai.com/v1",
		Model:   "gpt-4o",
	},
	"openrouter": {
		BaseURL: "https://openrouter.ai/api/v1",
		Model:   "meta-llama/llama-3.3-70b-instruct",
	},
	"ollama": {
		BaseURL: "http://localhost:11434/v1",
		Model:   "llama3.1",
	},
}

// Selectable models per provider, shown in the UI model picker. The first
// entry is the provider default.
var providerModels = map[string][]string{
	"groq": {
		"llama-3.3-70b-versatile",
		"llama-3.1-70b-versatile",
		"llama-3.1-8b-instant",
		"mixtral-8x7b-32768",
	},
	"openai": {
		"gpt-4o",
		"gpt-4o-mini",
	},
	"openrouter": {
		"meta-llama/llama-3.3-70b-instruct",
		"deepseek/deepseek-chat",
	},
	"ollama": {
		"llama3.1",
	},
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// IsAIEnabled returns true if an LLM API key is configured.
func (p *Profile) IsAIEnabled() bool {
	return p.LLMAPIKey != ""
}

// Models returns the selectable model list for the configured provider.
// The configured default model is always included.
func (p *Profile) Models() []string {
	models := providerModels[p.LLMProvider]
	for _, m := range models {
		if m == p.LLMModel {
			return models
		}
	}
	return append([]string{p.LLMModel}, models...)
}

// getEnvOrDefault returns environment variable value or default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrDefaultInt returns environment variable value as int or default value.
func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvOrDefaultFloat returns environment variable value as float32 or default value.
func getEnvOrDefaultFloat(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

// FromEnv loads configuration from environment variables.
func (p *Profile) FromEnv() {
	p.LLMProvider = getEnvOrDefault("BWASSIST_AI_LLM_PROVIDER", "groq")
	p.LLMAPIKey = getEnvOrDefault("BWASSIST_AI_LLM_API_KEY", os.Getenv("GROQ_API_KEY"))
	p.LLMBaseURL = getEnvOrDefault("BWASSIST_AI_LLM_BASE_URL", "")
	p.LLMModel = getEnvOrDefault("BWASSIST_AI_LLM_MODEL", "")
	p.LLMMaxTokens = getEnvOrDefaultInt("BWASSIST_AI_LLM_MAX_TOKENS", 4000)
	p.LLMTemperature = getEnvOrDefaultFloat("BWASSIST_AI_LLM_TEMPERATURE", 0.3)
	p.LLMTimeout = getEnvOrDefaultInt("BWASSIST_AI_LLM_TIMEOUT_SECONDS", 120)

	if p.LLMProvider != "" {
		if _, ok := llmProviderDefaults[p.LLMProvider]; !ok {
			slog.Warn("unknown LLM provider, treating as generic OpenAI-compatible", "provider", p.LLMProvider)
		}
	}
	if p.LLMBaseURL == "" || p.LLMModel == "" {
		if defaults, ok := llmProviderDefaults[p.LLMProvider]; ok {
			if p.LLMBaseURL == "" {
				p.LLMBaseURL = defaults.BaseURL
			}
			if p.LLMModel == "" {
				p.LLMModel = defaults.Model
			}
		}
	}
}

// Validate normalizes the profile and rejects unusable configurations.
func (p *Profile) Validate() error {
	if p.Mode != "demo" && p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "demo"
	}

	if p.Port <= 0 || p.Port > 65535 {
		return errors.Errorf("invalid port %d", p.Port)
	}

	// Generic providers have no default endpoint; an explicit base URL is required.
	if _, ok := llmProviderDefaults[p.LLMProvider]; !ok && p.LLMBaseURL == "" {
		return errors.Errorf("LLM provider %q requires BWASSIST_AI_LLM_BASE_URL", p.LLMProvider)
	}
	if _, ok := llmProviderDefaults[p.LLMProvider]; !ok && p.LLMModel == "" {
		return errors.Errorf("LLM provider %q requires BWASSIST_AI_LLM_MODEL", p.LLMProvider)
	}

	return nil
}
