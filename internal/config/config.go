// Package config loads service configuration from flags, environment
// variables, and an optional config file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the detector service.
type Config struct {
	// Server configuration
	Port        int `mapstructure:"port"`
	MetricsPort int `mapstructure:"metrics_port"`

	// Model backends
	ImageModel     string `mapstructure:"image_model"`
	TextBackendURL string `mapstructure:"text_backend_url"`
	TextModel      string `mapstructure:"text_model"`
	TextAPIKey     string `mapstructure:"text_api_key"`

	// Batching
	MaxBatchSize int           `mapstructure:"max_batch_size"`
	BatchWait    time.Duration `mapstructure:"batch_wait"`

	// Input fetching
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`

	// Verdict cache
	Redis    string        `mapstructure:"redis"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`

	// OpenTelemetry configuration
	OTELEnabled  bool   `mapstructure:"otel_enabled"`
	OTELEndpoint string `mapstructure:"otel_endpoint"`

	// Feature flags
	UseMockInference bool `mapstructure:"use_mock_inference"`
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("port", 50051)
	v.SetDefault("metrics_port", 9100)
	v.SetDefault("image_model", "nsfw_image.onnx")
	v.SetDefault("text_backend_url", "http://localhost:8000")
	v.SetDefault("text_model", "Qwen/Qwen3Guard-Gen-0.6B")
	v.SetDefault("text_api_key", "")
	v.SetDefault("max_batch_size", 8)
	v.SetDefault("batch_wait", 100*time.Millisecond)
	v.SetDefault("fetch_timeout", 30*time.Second)
	v.SetDefault("redis", "")
	v.SetDefault("cache_ttl", time.Hour)
	v.SetDefault("otel_enabled", false)
	v.SetDefault("otel_endpoint", "")
	v.SetDefault("use_mock_inference", false)

	v.SetEnvPrefix("NSFW_DETECTOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Honor the standard OTEL exporter variable as well
	if ep := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); ep != "" {
		v.Set("otel_endpoint", ep)
		v.Set("otel_enabled", true)
	}

	v.BindEnv("port", "NSFW_DETECTOR_PORT")
	v.BindEnv("metrics_port", "NSFW_DETECTOR_METRICS_PORT")
	v.BindEnv("image_model", "NSFW_DETECTOR_IMAGE_MODEL")
	v.BindEnv("text_backend_url", "NSFW_DETECTOR_TEXT_BACKEND_URL")
	v.BindEnv("text_model", "NSFW_DETECTOR_TEXT_MODEL")
	v.BindEnv("text_api_key", "NSFW_DETECTOR_TEXT_API_KEY")
	v.BindEnv("max_batch_size", "NSFW_DETECTOR_MAX_BATCH_SIZE")
	v.BindEnv("batch_wait", "NSFW_DETECTOR_BATCH_WAIT")
	v.BindEnv("fetch_timeout", "NSFW_DETECTOR_FETCH_TIMEOUT")
	v.BindEnv("redis", "NSFW_DETECTOR_REDIS")
	v.BindEnv("cache_ttl", "NSFW_DETECTOR_CACHE_TTL")
	v.BindEnv("otel_enabled", "NSFW_DETECTOR_OTEL_ENABLED")
	v.BindEnv("otel_endpoint", "NSFW_DETECTOR_OTEL_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
	v.BindEnv("use_mock_inference", "NSFW_DETECTOR_USE_MOCK")

	return v
}

// Load loads configuration from environment variables and an optional config
// file. Priority (highest to lowest): env vars > config file > defaults.
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/nsfw-detector/")
	v.AddConfigPath("$HOME/.nsfw-detector")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; ignore
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadWithConfigFile loads configuration from a specific config file.
func LoadWithConfigFile(configPath string) (*Config, error) {
	v := newViper()

	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", configPath, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.MetricsPort <= 0 || c.MetricsPort > 65535 {
		return fmt.Errorf("invalid metrics port: %d", c.MetricsPort)
	}
	if c.Port == c.MetricsPort {
		return fmt.Errorf("port and metrics_port must be different")
	}
	if c.MaxBatchSize < 1 {
		return fmt.Errorf("max_batch_size must be at least 1, got %d", c.MaxBatchSize)
	}
	if c.BatchWait <= 0 {
		return fmt.Errorf("batch_wait must be positive, got %s", c.BatchWait)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be positive, got %s", c.FetchTimeout)
	}
	if !c.UseMockInference {
		if c.ImageModel == "" {
			return fmt.Errorf("image_model path is required when not using mock inference")
		}
		if c.TextBackendURL == "" {
			return fmt.Errorf("text_backend_url is required when not using mock inference")
		}
	}
	return nil
}
