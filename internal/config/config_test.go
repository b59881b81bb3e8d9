package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != 50051 {
		t.Errorf("port: got %d, want 50051", cfg.Port)
	}
	if cfg.MetricsPort != 9100 {
		t.Errorf("metrics_port: got %d, want 9100", cfg.MetricsPort)
	}
	if cfg.MaxBatchSize != 8 {
		t.Errorf("max_batch_size: got %d, want 8", cfg.MaxBatchSize)
	}
	if cfg.BatchWait != 100*time.Millisecond {
		t.Errorf("batch_wait: got %s, want 100ms", cfg.BatchWait)
	}
	if cfg.FetchTimeout != 30*time.Second {
		t.Errorf("fetch_timeout: got %s, want 30s", cfg.FetchTimeout)
	}
	if cfg.OTELEnabled {
		t.Error("otel must be disabled by default")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("NSFW_DETECTOR_MAX_BATCH_SIZE", "16")
	t.Setenv("NSFW_DETECTOR_REDIS", "redis:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.MaxBatchSize != 16 {
		t.Errorf("max_batch_size: got %d, want 16", cfg.MaxBatchSize)
	}
	if cfg.Redis != "redis:6379" {
		t.Errorf("redis: got %q, want redis:6379", cfg.Redis)
	}
}

func TestLoadStandardOTELEndpointEnablesTracing(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://collector:4317")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !cfg.OTELEnabled {
		t.Error("expected OTEL_EXPORTER_OTLP_ENDPOINT to enable tracing")
	}
	if cfg.OTELEndpoint != "http://collector:4317" {
		t.Errorf("otel_endpoint: got %q, want the standard env value", cfg.OTELEndpoint)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:             50051,
			MetricsPort:      9100,
			ImageModel:       "model.onnx",
			MaxBatchSize:     8,
			BatchWait:        100 * time.Millisecond,
			FetchTimeout:     30 * time.Second,
			UseMockInference: true,
		}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("base config must validate: %v", err)
	}

	cfg := base()
	cfg.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero port")
	}

	cfg = base()
	cfg.MetricsPort = cfg.Port
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for colliding ports")
	}

	cfg = base()
	cfg.MaxBatchSize = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero max_batch_size")
	}

	cfg = base()
	cfg.UseMockInference = false
	cfg.TextBackendURL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing text backend")
	}
}
