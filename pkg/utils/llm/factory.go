package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Factory builds completers for one provider. A key passed to Completer overrides the
// configured one; the configured completer is built once and reused.
type Factory struct {
	provider string
	cfg      Config
	logger   *zap.Logger

	mu       sync.Mutex
	fallback Completer
}

func NewFactory(provider string, cfg Config, logger *zap.Logger) (*Factory, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if provider != ProviderOpenAI && provider != ProviderGemini {
		return nil, fmt.Errorf("unknown LLM provider %q", provider)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Factory{provider: provider, cfg: cfg, logger: logger}, nil
}

func (f *Factory) Provider() string { return f.provider }

func (f *Factory) Completer(ctx context.Context, apiKey string) (Completer, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey != "" && apiKey != f.cfg.APIKey {
		cfg := f.cfg
		cfg.APIKey = apiKey
		return f.build(ctx, cfg)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fallback != nil {
		return f.fallback, nil
	}
	completer, err := f.build(ctx, f.cfg)
	if err != nil {
		return nil, err
	}
	f.fallback = completer
	return completer, nil
}

func (f *Factory) build(ctx context.Context, cfg Config) (Completer, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if f.provider == ProviderGemini {
		return NewGeminiClient(ctx, cfg, f.logger)
	}
	return NewOpenAIClient(cfg, f.logger), nil
}
