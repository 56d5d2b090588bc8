package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/vit0-9/campaign_url_api/pkg/utils/llm"
)

const (
	ProviderOpenAI = llm.ProviderOpenAI
	ProviderGemini = llm.ProviderGemini

	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGeminiModel = "gemini-2.5-flash"
)

type Config struct {
	Port          string `mapstructure:"port"`
	AppEnv        string `mapstructure:"app_env"`
	PublicBaseURL string `mapstructure:"public_base_url"`

	LLMProvider    string        `mapstructure:"llm_provider"`
	OpenAIAPIKey   string        `mapstructure:"openai_api_key"`
	OpenAIBaseURL  string        `mapstructure:"openai_base_url"`
	GeminiAPIKey   string        `mapstructure:"gemini_api_key"`
	LLMModel       string        `mapstructure:"llm_model"`
	LLMTemperature float64       `mapstructure:"llm_temperature"`
	LLMTimeout     time.Duration `mapstructure:"llm_timeout"`

	ValidationTimeout time.Duration `mapstructure:"validation_timeout"`

	DatabaseURL string `mapstructure:"database_url"`
	HistoryPath string `mapstructure:"history_path"`
	QRSize      int    `mapstructure:"qr_size"`
	LogLevel    string `mapstructure:"log_level"`
}

var defaults = map[string]interface{}{
	"port":               "8080",
	"app_env":            "local",
	"public_base_url":    "http://localhost:8080",
	"llm_provider":       ProviderOpenAI,
	"openai_api_key":     "",
	"openai_base_url":    "https://api.openai.com/v1",
	"gemini_api_key":     "",
	"llm_model":          "",
	"llm_temperature":    0.2,
	"llm_timeout":        60 * time.Second,
	"validation_timeout": 5 * time.Second,
	"database_url":       "file:campaign_links.sqlite",
	"history_path":       "campaign_history.jsonl",
	"qr_size":            256,
	"log_level":          "info",
}

// Load reads .env (if present), then an optional config file, then the environment.
// Environment variables use the upper-cased key names, e.g. OPENAI_API_KEY.
func Load(configFile string) (*Config, error) {
	_ = godotenv.Load() // Ignore error if .env not found (e.g. prod)

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile == "" {
		configFile = v.GetString("campaign_config")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.LLMProvider = strings.ToLower(strings.TrimSpace(cfg.LLMProvider))
	if cfg.LLMModel == "" {
		cfg.LLMModel = DefaultModelFor(cfg.LLMProvider)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	switch c.LLMProvider {
	case ProviderOpenAI, ProviderGemini:
	default:
		errs = append(errs, fmt.Errorf("unknown llm_provider %q (expected %s or %s)", c.LLMProvider, ProviderOpenAI, ProviderGemini))
	}
	if c.LLMTemperature < 0 || c.LLMTemperature > 2 {
		errs = append(errs, fmt.Errorf("llm_temperature must be within [0, 2], got %v", c.LLMTemperature))
	}
	if c.ValidationTimeout <= 0 {
		errs = append(errs, errors.New("validation_timeout must be positive"))
	}
	if c.QRSize <= 0 {
		errs = append(errs, errors.New("qr_size must be positive"))
	}
	return errors.Join(errs...)
}

func DefaultModelFor(provider string) string {
	if provider == ProviderGemini {
		return DefaultGeminiModel
	}
	return DefaultOpenAIModel
}

// LLMConfig is the provider configuration for the selected provider.
func (c *Config) LLMConfig() llm.Config {
	cfg := llm.Config{APIKey: c.APIKey(), Timeout: c.LLMTimeout}
	if c.LLMProvider == ProviderOpenAI {
		cfg.BaseURL = c.OpenAIBaseURL
	}
	return cfg
}

// APIKey returns the key for the configured provider.
func (c *Config) APIKey() string {
	if c.LLMProvider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

func (c *Config) IsLocal() bool {
	return c.AppEnv == "" || c.AppEnv == "local"
}
