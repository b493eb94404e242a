package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the JobSathi job search service.
type Config struct {
	Server    ServerConfig
	Search    SearchConfig
	Providers ProvidersConfig
	RateLimit RateLimitConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Addr            string        // listen address, e.g. ":8080"
	ShutdownTimeout time.Duration // drain window on SIGINT/SIGTERM
}

// SearchConfig controls the aggregation pipeline defaults.
type SearchConfig struct {
	DefaultLocation string        // used when a profile has no usable location
	MinScore        int           // default relevance threshold
	CallTimeout     time.Duration // per provider request
}

// ProvidersConfig holds per-provider credentials and switches.
type ProvidersConfig struct {
	Adzuna  AdzunaConfig
	Jooble  KeyedConfig
	SerpAPI KeyedConfig
}

// AdzunaConfig describes the Adzuna provider (paired app credentials
// plus a country code baked into the endpoint path).
type AdzunaConfig struct {
	Enabled bool   `yaml:"enabled"`
	AppID   string `yaml:"app_id"`
	AppKey  string `yaml:"app_key"`
	Country string `yaml:"country"`
}

// KeyedConfig describes a provider authenticated by a single API key.
type KeyedConfig struct {
	Enabled bool   `yaml:"enabled"`
	APIKey  string `yaml:"api_key"`
}

// RateLimitConfig controls provider-level rate limiting.
type RateLimitConfig struct {
	MinDelay  time.Duration            // minimum gap between requests to the same provider
	Overrides map[string]time.Duration // per-provider overrides, keyed by provider name
}

// MinDelayFor returns the configured delay for the given provider,
// falling back to MinDelay.
func (r RateLimitConfig) MinDelayFor(provider string) time.Duration {
	if d, ok := r.Overrides[provider]; ok {
		return d
	}
	return r.MinDelay
}

const (
	defaultAddr            = ":8080"
	defaultShutdownTimeout = 10 * time.Second
	defaultLocation        = "India"
	defaultMinScore        = 5
	defaultCallTimeout     = 10 * time.Second
	defaultAdzunaCountry   = "in"
)

// rawConfig is used for YAML unmarshaling (snake_case fields and
// durations as strings).
type rawConfig struct {
	Server    rawServerConfig    `yaml:"server"`
	Search    rawSearchConfig    `yaml:"search"`
	Providers rawProvidersConfig `yaml:"providers"`
	RateLimit rawRateLimitConfig `yaml:"rate_limit"`
}

type rawServerConfig struct {
	Addr            string `yaml:"addr"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

type rawSearchConfig struct {
	DefaultLocation string `yaml:"default_location"`
	MinScore        *int   `yaml:"min_score"`
	CallTimeout     string `yaml:"call_timeout"`
}

type rawProvidersConfig struct {
	Adzuna  AdzunaConfig `yaml:"adzuna"`
	Jooble  KeyedConfig  `yaml:"jooble"`
	SerpAPI KeyedConfig  `yaml:"serpapi"`
}

type rawRateLimitConfig struct {
	MinDelay  string            `yaml:"min_delay"`
	Overrides map[string]string `yaml:"overrides"`
}

// Load reads and parses the YAML config file at path, validates it,
// and returns Config. ${VAR} references are expanded from the
// environment so credentials never live in the file itself.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	shutdownTimeout := defaultShutdownTimeout
	if raw.Server.ShutdownTimeout != "" {
		shutdownTimeout, err = time.ParseDuration(raw.Server.ShutdownTimeout)
		if err != nil {
			return nil, fmt.Errorf("parse server.shutdown_timeout %q: %w", raw.Server.ShutdownTimeout, err)
		}
	}

	callTimeout := defaultCallTimeout
	if raw.Search.CallTimeout != "" {
		callTimeout, err = time.ParseDuration(raw.Search.CallTimeout)
		if err != nil {
			return nil, fmt.Errorf("parse search.call_timeout %q: %w", raw.Search.CallTimeout, err)
		}
	}

	minScore := defaultMinScore
	if raw.Search.MinScore != nil {
		minScore = *raw.Search.MinScore
	}

	var minDelay time.Duration
	if raw.RateLimit.MinDelay != "" {
		minDelay, err = time.ParseDuration(raw.RateLimit.MinDelay)
		if err != nil {
			return nil, fmt.Errorf("parse rate_limit.min_delay %q: %w", raw.RateLimit.MinDelay, err)
		}
	}

	overrides := make(map[string]time.Duration)
	for provider, value := range raw.RateLimit.Overrides {
		d, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("parse rate_limit.overrides[%q]: %w", provider, err)
		}
		overrides[provider] = d
	}

	providers := raw.Providers
	if providers.Adzuna.Country == "" {
		providers.Adzuna.Country = defaultAdzunaCountry
	}

	cfg := &Config{
		Server: ServerConfig{
			Addr:            orDefault(raw.Server.Addr, defaultAddr),
			ShutdownTimeout: shutdownTimeout,
		},
		Search: SearchConfig{
			DefaultLocation: orDefault(raw.Search.DefaultLocation, defaultLocation),
			MinScore:        minScore,
			CallTimeout:     callTimeout,
		},
		Providers: ProvidersConfig{
			Adzuna:  providers.Adzuna,
			Jooble:  providers.Jooble,
			SerpAPI: providers.SerpAPI,
		},
		RateLimit: RateLimitConfig{
			MinDelay:  minDelay,
			Overrides: overrides,
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func validate(cfg *Config) error {
	enabled := 0
	if cfg.Providers.Adzuna.Enabled {
		enabled++
		if cfg.Providers.Adzuna.AppID == "" || cfg.Providers.Adzuna.AppKey == "" {
			return fmt.Errorf("providers.adzuna.app_id and app_key are required when adzuna is enabled")
		}
	}
	if cfg.Providers.Jooble.Enabled {
		enabled++
		if cfg.Providers.Jooble.APIKey == "" {
			return fmt.Errorf("providers.jooble.api_key is required when jooble is enabled")
		}
	}
	if cfg.Providers.SerpAPI.Enabled {
		enabled++
		if cfg.Providers.SerpAPI.APIKey == "" {
			return fmt.Errorf("providers.serpapi.api_key is required when serpapi is enabled")
		}
	}
	if enabled == 0 {
		return fmt.Errorf("at least one provider must be enabled")
	}

	if cfg.Search.MinScore < 0 {
		return fmt.Errorf("search.min_score must be non-negative, got %d", cfg.Search.MinScore)
	}
	if cfg.Search.CallTimeout <= 0 {
		return fmt.Errorf("search.call_timeout must be positive, got %v", cfg.Search.CallTimeout)
	}
	if cfg.RateLimit.MinDelay < 0 {
		return fmt.Errorf("rate_limit.min_delay must be non-negative, got %v", cfg.RateLimit.MinDelay)
	}

	return nil
}
