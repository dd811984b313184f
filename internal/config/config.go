package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Cache     CacheConfig     `mapstructure:"cache"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Upstream  UpstreamConfig  `mapstructure:"upstream"`
	Settings  SettingsConfig  `mapstructure:"settings"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type CacheConfig struct {
	Path        string        `mapstructure:"path"`
	DefaultTTL  time.Duration `mapstructure:"default_ttl"`
	VerifiedTTL time.Duration `mapstructure:"verified_ttl"`
	NegativeTTL time.Duration `mapstructure:"negative_ttl"`
	MaxEntries  int           `mapstructure:"max_entries"`
}

type RateLimitConfig struct {
	MinDelay          time.Duration `mapstructure:"min_delay"`
	MaxDelay          time.Duration `mapstructure:"max_delay"`
	BackoffMultiplier int           `mapstructure:"backoff_multiplier"`
	MaxConcurrent     int           `mapstructure:"max_concurrent"`
}

type UpstreamConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	BearerToken       string        `mapstructure:"bearer_token"`
	CSRFToken         string        `mapstructure:"csrf_token"`
	UserQueryID       string        `mapstructure:"user_query_id"`
	AboutQueryID      string        `mapstructure:"about_query_id"`
	Timeout           time.Duration `mapstructure:"timeout"`
	PauseBetweenCalls time.Duration `mapstructure:"pause_between_calls"`
}

type SettingsConfig struct {
	Path string `mapstructure:"path"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configs/config.yaml (or ./config.yaml) over the built-in
// defaults. Every key can also come from the environment with the
// PROFILECHECK_ prefix, dots replaced by underscores.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PROFILECHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")

	v.SetDefault("cache.path", "./data/profiles.json")
	v.SetDefault("cache.default_ttl", "720h")
	v.SetDefault("cache.verified_ttl", "2160h")
	v.SetDefault("cache.negative_ttl", "168h")
	v.SetDefault("cache.max_entries", 50000)

	v.SetDefault("rate_limit.min_delay", "500ms")
	v.SetDefault("rate_limit.max_delay", "30s")
	v.SetDefault("rate_limit.backoff_multiplier", 2)
	v.SetDefault("rate_limit.max_concurrent", 3)

	v.SetDefault("upstream.base_url", "https://x.com")
	v.SetDefault("upstream.bearer_token", "")
	v.SetDefault("upstream.csrf_token", "")
	v.SetDefault("upstream.user_query_id", "G3KGOASz96M-Qu0nwmGXNg")
	v.SetDefault("upstream.about_query_id", "cgwlz8_CG3qJWTVoGDbPpg")
	v.SetDefault("upstream.timeout", "30s")
	v.SetDefault("upstream.pause_between_calls", "300ms")

	v.SetDefault("settings.path", "./data/settings.json")

	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"*"})

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}
