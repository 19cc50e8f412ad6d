package llm

import (
	"context"
	"fmt"
	"os"
	"time"
)

// Config selects and parameterizes a provider.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "mock".
	Provider string

	APIKey string

	// Model is a friendly name or a literal model id; empty picks the
	// provider default.
	Model string

	Retry RetryConfig

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration
}

// RetryConfig controls the backoff behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryConfig returns the standard backoff settings.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Second,
		MaxWait:     10 * time.Second,
		Multiplier:  2.0,
	}
}

// Discover probes the standard API key environment variables and returns a
// config for the first provider found. GAUGE_LLM_PROVIDER forces the
// choice; GAUGE_LLM_MODEL overrides the model.
func Discover() (Config, bool) {
	cfg := Config{
		Retry:   DefaultRetryConfig(),
		Timeout: 30 * time.Second,
		Model:   os.Getenv("GAUGE_LLM_MODEL"),
	}

	if forced := os.Getenv("GAUGE_LLM_PROVIDER"); forced != "" {
		cfg.Provider = forced
		cfg.APIKey = keyFor(forced)
		return cfg, cfg.Provider == "mock" || cfg.APIKey != ""
	}

	for _, p := range []string{"anthropic", "openai", "gemini"} {
		if k := keyFor(p); k != "" {
			cfg.Provider = p
			cfg.APIKey = k
			return cfg, true
		}
	}
	return Config{}, false
}

func keyFor(provider string) string {
	switch provider {
	case "anthropic":
		return os.Getenv("ANTHROPIC_API_KEY")
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	case "gemini":
		return os.Getenv("GEMINI_API_KEY")
	}
	return ""
}

// NewProvider builds the configured provider wrapped with retry.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	var (
		inner Provider
		err   error
	)
	switch cfg.Provider {
	case "anthropic":
		inner, err = NewAnthropicProvider(cfg)
	case "openai":
		inner, err = NewOpenAIProvider(cfg)
	case "gemini":
		inner, err = NewGeminiProvider(ctx, cfg)
	case "mock":
		inner = NewMockProvider()
		err = nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	retry := cfg.Retry
	if retry.MaxAttempts == 0 {
		retry = DefaultRetryConfig()
	}
	return WithRetry(inner, retry), nil
}

// resolveModel maps a friendly model name through the provider's table;
// unknown names pass through as literal model ids.
func resolveModel(name string, models map[string]string, fallback string) string {
	if name == "" {
		return models[fallback]
	}
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
