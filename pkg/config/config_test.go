package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ProviderOpenAI, cfg.LLMProvider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLMModel)
	assert.InDelta(t, 0.2, cfg.LLMTemperature, 1e-9)
	assert.Equal(t, 5*time.Second, cfg.ValidationTimeout)
	assert.Equal(t, 256, cfg.QRSize)
	assert.True(t, cfg.IsLocal())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")
	t.Setenv("VALIDATION_TIMEOUT", "2s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, ProviderGemini, cfg.LLMProvider)
	assert.Equal(t, "g-key", cfg.APIKey())
	assert.Equal(t, 2*time.Second, cfg.ValidationTimeout)
	assert.Equal(t, DefaultGeminiModel, cfg.LLMModel)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "campaign.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm_model: gpt-4o\nqr_size: 512\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", cfg.LLMModel)
	assert.Equal(t, 512, cfg.QRSize)

	t.Setenv("LLM_MODEL", "gpt-4-turbo")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4-turbo", cfg.LLMModel)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LLM_PROVIDER", "claude")
	t.Setenv("LLM_TEMPERATURE", "3.5")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown llm_provider")
	assert.Contains(t, err.Error(), "llm_temperature")
}

func TestLoadMissingConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
