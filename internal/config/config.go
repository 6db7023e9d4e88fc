package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ServiceName string
	APIPort     string
	LogLevel    string

	CORSAllowedOrigins []string

	APIRateLimitRPS       float64
	APIRateLimitBurst     int
	APIMaxInFlight        int
	APIBackpressureWaitMS int
	APIMaxConnections     int

	PostgresDSN string

	NATSURL     string
	NATSSubject string

	ResilienceRetryMaxAttempts    int
	ResilienceRetryInitialBackoff time.Duration
	ResilienceBreakerEnabled      bool

	WorkerMetricsPort string
}

// fileConfig mirrors the optional YAML file. Values from it are used as
// defaults; environment variables still win.
type fileConfig struct {
	ServiceName string   `yaml:"service_name"`
	APIPort     string   `yaml:"api_port"`
	LogLevel    string   `yaml:"log_level"`
	CORSOrigins []string `yaml:"cors_allowed_origins"`

	RateLimit struct {
		RPS   *float64 `yaml:"rps"`
		Burst *int     `yaml:"burst"`
	} `yaml:"rate_limit"`
	Backpressure struct {
		MaxInFlight *int `yaml:"max_in_flight"`
		WaitMS      *int `yaml:"wait_ms"`
	} `yaml:"backpressure"`
	MaxConnections *int `yaml:"max_connections"`

	Postgres struct {
		DSN string `yaml:"dsn"`
	} `yaml:"postgres"`
	NATS struct {
		URL     string `yaml:"url"`
		Subject string `yaml:"subject"`
	} `yaml:"nats"`
	Resilience struct {
		RetryMaxAttempts      *int  `yaml:"retry_max_attempts"`
		RetryInitialBackoffMS *int  `yaml:"retry_initial_backoff_ms"`
		BreakerEnabled        *bool `yaml:"breaker_enabled"`
	} `yaml:"resilience"`

	WorkerMetricsPort string `yaml:"worker_metrics_port"`
}

// Load reads configuration from the environment, layered over the YAML file
// named by CONFIG_FILE when that variable is set.
func Load() (Config, error) {
	var fc fileConfig
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}
	return fromSources(fc), nil
}

func fromSources(fc fileConfig) Config {
	origins := fc.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return Config{
		ServiceName: mustEnv("SERVICE_NAME", orDefault(fc.ServiceName, "fretboard-chords")),
		APIPort:     mustEnv("API_PORT", orDefault(fc.APIPort, "8080")),
		LogLevel:    mustEnv("LOG_LEVEL", orDefault(fc.LogLevel, "info")),

		CORSAllowedOrigins: mustEnvList("CORS_ALLOWED_ORIGINS", origins),

		APIRateLimitRPS:       mustEnvFloat("API_RATE_LIMIT_RPS", deref(fc.RateLimit.RPS, 50)),
		APIRateLimitBurst:     mustEnvInt("API_RATE_LIMIT_BURST", deref(fc.RateLimit.Burst, 100)),
		APIMaxInFlight:        mustEnvInt("API_MAX_IN_FLIGHT", deref(fc.Backpressure.MaxInFlight, 64)),
		APIBackpressureWaitMS: mustEnvInt("API_BACKPRESSURE_WAIT_MS", deref(fc.Backpressure.WaitMS, 250)),
		APIMaxConnections:     mustEnvInt("API_MAX_CONNECTIONS", deref(fc.MaxConnections, 512)),

		PostgresDSN: mustEnv("POSTGRES_DSN", fc.Postgres.DSN),

		NATSURL:     mustEnv("NATS_URL", fc.NATS.URL),
		NATSSubject: mustEnv("NATS_SUBJECT", orDefault(fc.NATS.Subject, "chords.recognized")),

		ResilienceRetryMaxAttempts:    mustEnvInt("RESILIENCE_RETRY_MAX_ATTEMPTS", deref(fc.Resilience.RetryMaxAttempts, 3)),
		ResilienceRetryInitialBackoff: time.Duration(mustEnvInt("RESILIENCE_RETRY_INITIAL_BACKOFF_MS", deref(fc.Resilience.RetryInitialBackoffMS, 100))) * time.Millisecond,
		ResilienceBreakerEnabled:      mustEnvBool("RESILIENCE_BREAKER_ENABLED", deref(fc.Resilience.BreakerEnabled, true)),

		WorkerMetricsPort: mustEnv("WORKER_METRICS_PORT", orDefault(fc.WorkerMetricsPort, "9090")),
	}
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func deref[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func mustEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
