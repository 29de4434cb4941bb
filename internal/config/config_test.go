package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.BucketCount != 10 {
		t.Errorf("BucketCount = %d, want 10", cfg.BucketCount)
	}
	if cfg.MaxImageBytes != 5<<20 {
		t.Errorf("MaxImageBytes = %d, want %d", cfg.MaxImageBytes, 5<<20)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", cfg.ShutdownTimeout)
	}
	if cfg.Level() != zerolog.InfoLevel {
		t.Errorf("Level() = %v, want info", cfg.Level())
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("AGENDA_PORT", "9090")
	t.Setenv("AGENDA_BUCKET_COUNT", "31")
	t.Setenv("AGENDA_LOG_LEVEL", "debug")
	t.Setenv("AGENDA_SHUTDOWN_TIMEOUT", "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.BucketCount != 31 {
		t.Errorf("BucketCount = %d, want 31", cfg.BucketCount)
	}
	if cfg.Level() != zerolog.DebugLevel {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
	if cfg.ShutdownTimeout != 2*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 2s", cfg.ShutdownTimeout)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "zero buckets", key: "AGENDA_BUCKET_COUNT", value: "0"},
		{name: "negative buckets", key: "AGENDA_BUCKET_COUNT", value: "-1"},
		{name: "non numeric port", key: "AGENDA_PORT", value: "http"},
		{name: "port out of range", key: "AGENDA_PORT", value: "70000"},
		{name: "zero image size", key: "AGENDA_MAX_IMAGE_BYTES", value: "0"},
		{name: "unknown log level", key: "AGENDA_LOG_LEVEL", value: "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%s should fail", tt.key, tt.value)
			}
		})
	}
}
