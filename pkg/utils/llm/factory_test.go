package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFactory_UnknownProvider(t *testing.T) {
	_, err := NewFactory("claude", Config{}, nil)
	assert.Error(t, err)
}

func TestFactory_MissingKey(t *testing.T) {
	factory, err := NewFactory("OpenAI", Config{}, nil)
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, factory.Provider())

	_, err = factory.Completer(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestFactory_ReusesConfiguredCompleter(t *testing.T) {
	factory, err := NewFactory(ProviderOpenAI, Config{APIKey: "configured"}, nil)
	require.NoError(t, err)

	first, err := factory.Completer(context.Background(), "")
	require.NoError(t, err)
	second, err := factory.Completer(context.Background(), "configured")
	require.NoError(t, err)
	assert.Same(t, first, second)

	override, err := factory.Completer(context.Background(), "request-key")
	require.NoError(t, err)
	assert.NotSame(t, first, override)
	assert.Equal(t, "request-key", override.(*OpenAIClient).apiKey)
}

func TestFactory_Gemini(t *testing.T) {
	factory, err := NewFactory(ProviderGemini, Config{APIKey: "g-key"}, nil)
	require.NoError(t, err)
	completer, err := factory.Completer(context.Background(), "")
	require.NoError(t, err)
	assert.IsType(t, &GeminiClient{}, completer)
}
