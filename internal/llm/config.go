package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Provider keys accepted by PATHFINDER_LLM_PROVIDER.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// defaultModels holds the model used when PATHFINDER_<P>_MODEL is unset.
// Friendly aliases are resolved by each provider.
var defaultModels = map[string]string{
	ProviderAnthropic:  "claude-haiku",
	ProviderOpenAI:     "gpt-4o-mini",
	ProviderGemini:     "gemini-flash",
	ProviderOpenRouter: "google/gemini-2.0-flash-001",
	ProviderMock:       "mock",
}

// discoveryOrder lists the standard API key variables probed when no
// provider is configured explicitly.
var discoveryOrder = []struct {
	provider string
	env      string
}{
	{ProviderAnthropic, "ANTHROPIC_API_KEY"},
	{ProviderOpenAI, "OPENAI_API_KEY"},
	{ProviderGemini, "GEMINI_API_KEY"},
	{ProviderOpenRouter, "OPENROUTER_API_KEY"},
}

// Config selects and configures one provider.
type Config struct {
	Provider string
	APIKey   string
	Model    string
	// BaseURL overrides the API endpoint (OpenAI-compatible providers).
	BaseURL string

	Retry RetryConfig

	// Timeout bounds a whole Generate call including retries.
	Timeout time.Duration
}

// RetryConfig configures backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns defaults for the named provider.
func DefaultConfig(provider string) Config {
	return Config{
		Provider: provider,
		Model:    defaultModels[provider],
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 45 * time.Second,
	}
}

// envPrefix is the PATHFINDER_<PROVIDER>_ prefix for per-provider settings.
func envPrefix(provider string) string {
	return "PATHFINDER_" + strings.ToUpper(provider) + "_"
}

// ConfigFromEnv reads PATHFINDER_LLM_PROVIDER and the matching
// PATHFINDER_<PROVIDER>_API_KEY, _MODEL and _BASE_URL. It reports false
// when no provider is selected.
func ConfigFromEnv() (Config, bool) {
	provider := strings.ToLower(strings.TrimSpace(os.Getenv("PATHFINDER_LLM_PROVIDER")))
	if provider == "" {
		return Config{}, false
	}

	cfg := DefaultConfig(provider)
	prefix := envPrefix(provider)
	if k := os.Getenv(prefix + "API_KEY"); k != "" {
		cfg.APIKey = k
	}
	if m := os.Getenv(prefix + "MODEL"); m != "" {
		cfg.Model = m
	}
	if u := os.Getenv(prefix + "BASE_URL"); u != "" {
		cfg.BaseURL = u
	}
	return cfg, true
}

// DiscoverConfig returns a Config for the first standard API key found in
// the environment.
func DiscoverConfig() (Config, bool) {
	for _, d := range discoveryOrder {
		if k := os.Getenv(d.env); k != "" {
			cfg := DefaultConfig(d.provider)
			cfg.APIKey = k
			return cfg, true
		}
	}
	return Config{}, false
}

// ResolveConfig prefers explicit PATHFINDER_* settings over discovery.
func ResolveConfig() (Config, error) {
	if cfg, ok := ConfigFromEnv(); ok {
		return cfg, cfg.Validate()
	}
	if cfg, ok := DiscoverConfig(); ok {
		return cfg, nil
	}
	return Config{}, fmt.Errorf("no LLM provider configured: set PATHFINDER_LLM_PROVIDER or one of %s", discoveryEnvList())
}

func discoveryEnvList() string {
	names := make([]string, len(discoveryOrder))
	for i, d := range discoveryOrder {
		names[i] = d.env
	}
	return strings.Join(names, ", ")
}

// Validate checks that the provider is known and has a key.
func (c Config) Validate() error {
	if _, ok := defaultModels[c.Provider]; !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if c.Provider != ProviderMock && c.APIKey == "" {
		return fmt.Errorf("%sAPI_KEY is required for the %s provider", envPrefix(c.Provider), c.Provider)
	}
	return nil
}

// resolveModel maps a friendly alias to a model ID; unknown names pass
// through unchanged.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
