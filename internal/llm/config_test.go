package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GAUGE_LLM_PROVIDER", "GAUGE_LLM_MODEL",
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestDiscover_NoKeys(t *testing.T) {
	clearProviderEnv(t)

	_, ok := Discover()
	assert.False(t, ok)
}

func TestDiscover_ProviderOrder(t *testing.T) {
	tests := []struct {
		name         string
		env          map[string]string
		wantProvider string
	}{
		{
			name:         "anthropic wins over openai",
			env:          map[string]string{"ANTHROPIC_API_KEY": "a", "OPENAI_API_KEY": "b"},
			wantProvider: "anthropic",
		},
		{
			name:         "openai wins over gemini",
			env:          map[string]string{"OPENAI_API_KEY": "b", "GEMINI_API_KEY": "c"},
			wantProvider: "openai",
		},
		{
			name:         "gemini alone",
			env:          map[string]string{"GEMINI_API_KEY": "c"},
			wantProvider: "gemini",
		},
		{
			name:         "forced provider overrides key order",
			env:          map[string]string{"GAUGE_LLM_PROVIDER": "gemini", "ANTHROPIC_API_KEY": "a", "GEMINI_API_KEY": "c"},
			wantProvider: "gemini",
		},
		{
			name:         "mock needs no key",
			env:          map[string]string{"GAUGE_LLM_PROVIDER": "mock"},
			wantProvider: "mock",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearProviderEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, ok := Discover()
			require.True(t, ok)
			assert.Equal(t, tt.wantProvider, cfg.Provider)
		})
	}
}

func TestDiscover_ForcedProviderWithoutKey(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("GAUGE_LLM_PROVIDER", "anthropic")

	_, ok := Discover()
	assert.False(t, ok)
}

func TestDiscover_ModelOverride(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "b")
	t.Setenv("GAUGE_LLM_MODEL", "gpt-4o")

	cfg, ok := Discover()
	require.True(t, ok)
	assert.Equal(t, "gpt-4o", cfg.Model)
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider(t.Context(), Config{Provider: "cohere"})
	require.Error(t, err)
}

func TestResolveModel(t *testing.T) {
	models := map[string]string{
		"claude-sonnet": "claude-sonnet-4-5",
		"claude-haiku":  "claude-haiku-4-5",
	}

	assert.Equal(t, "claude-haiku-4-5", resolveModel("", models, "claude-haiku"))
	assert.Equal(t, "claude-sonnet-4-5", resolveModel("claude-sonnet", models, "claude-haiku"))
	assert.Equal(t, "claude-3-opus-latest", resolveModel("claude-3-opus-latest", models, "claude-haiku"))
}
