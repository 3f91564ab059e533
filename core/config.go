package core

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds configuration for the telemetry pipeline.
// It supports three-layer configuration priority:
//  1. Default values (lowest priority)
//  2. Environment variables (medium priority)
//  3. Functional options (highest priority)
//
// Example usage:
//
//	cfg, err := NewConfig(
//	    WithAPIKey("my-write-key"),
//	    WithDataset("production-traces"),
//	    WithSampleRate(8),
//	)
type Config struct {
	// ServiceName is attached to every outgoing record.
	ServiceName string `yaml:"service_name"`

	// Submission client configuration.
	APIKey  string `yaml:"api_key"`
	Dataset string `yaml:"dataset"`
	APIHost string `yaml:"api_host"`

	// SampleRate is the sampling denominator: 1-in-N traces are
	// reported. Nil means sampling is disabled and every trace is
	// reported. A configured value of 0 is rejected by Validate.
	SampleRate *uint64 `yaml:"sample_rate"`

	// Logging configures the diagnostic logger.
	Logging LoggingConfig `yaml:"logging"`

	// Redis configures the Redis Streams submitter, for deployments
	// that consume telemetry off a stream instead of Honeycomb.
	Redis RedisConfig `yaml:"redis"`

	// Logger overrides the built-in diagnostic logger when set.
	Logger Logger `yaml:"-"`
}

// LoggingConfig controls diagnostic log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // DEBUG, INFO, WARN, ERROR
	Format string `yaml:"format"` // "text" or "json"; auto-detected when empty
}

// RedisConfig configures the Redis Streams submitter.
type RedisConfig struct {
	URL    string `yaml:"url"`
	Stream string `yaml:"stream"`
	MaxLen int64  `yaml:"max_len"`
}

// Option is a functional option for Config.
type Option func(*Config) error

// NewConfig creates a Config by applying defaults, environment
// variables, and the given options, in that order, then validating
// the result.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := defaultConfig()
	applyEnvironmentOverrides(cfg)
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		ServiceName: "unknown-service",
		APIHost:     "https://api.honeycomb.io/",
		Logging: LoggingConfig{
			Level: "INFO",
		},
		Redis: RedisConfig{
			Stream: "hivetrace:records",
			MaxLen: 100000,
		},
	}
}

// applyEnvironmentOverrides layers HIVETRACE_* environment variables
// over the current values.
func applyEnvironmentOverrides(cfg *Config) {
	if v := os.Getenv("HIVETRACE_SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}
	if v := os.Getenv("HIVETRACE_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("HIVETRACE_DATASET"); v != "" {
		cfg.Dataset = v
	}
	if v := os.Getenv("HIVETRACE_API_HOST"); v != "" {
		cfg.APIHost = v
	}
	if v := os.Getenv("HIVETRACE_SAMPLE_RATE"); v != "" {
		if rate, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.SampleRate = &rate
		}
	}
	if v := os.Getenv("HIVETRACE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("HIVETRACE_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("HIVETRACE_REDIS_URL"); v != "" {
		cfg.Redis.URL = v
	} else if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Redis.URL = v
	}
	if v := os.Getenv("HIVETRACE_REDIS_STREAM"); v != "" {
		cfg.Redis.Stream = v
	}
}

// Validate checks the configuration for invalid combinations.
// Submission credentials are checked by the sink constructor that
// needs them, not here, so that alternate submitters stay usable
// without Honeycomb credentials.
func (c *Config) Validate() error {
	if c.SampleRate != nil && *c.SampleRate == 0 {
		return ErrInvalidSampleRate
	}
	return nil
}

// WithServiceName sets the service name attached to records.
func WithServiceName(name string) Option {
	return func(c *Config) error {
		c.ServiceName = name
		return nil
	}
}

// WithAPIKey sets the submission client API key.
func WithAPIKey(key string) Option {
	return func(c *Config) error {
		c.APIKey = key
		return nil
	}
}

// WithDataset sets the target dataset name.
func WithDataset(dataset string) Option {
	return func(c *Config) error {
		c.Dataset = dataset
		return nil
	}
}

// WithAPIHost overrides the submission endpoint.
func WithAPIHost(host string) Option {
	return func(c *Config) error {
		c.APIHost = host
		return nil
	}
}

// WithSampleRate enables 1-in-rate trace sampling. A rate of 0 is
// rejected at validation time.
func WithSampleRate(rate uint64) Option {
	return func(c *Config) error {
		c.SampleRate = &rate
		return nil
	}
}

// WithLogger overrides the diagnostic logger.
func WithLogger(logger Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithRedis configures the Redis Streams submitter target.
func WithRedis(url, stream string) Option {
	return func(c *Config) error {
		c.Redis.URL = url
		if stream != "" {
			c.Redis.Stream = stream
		}
		return nil
	}
}

// WithConfigFile layers values from a YAML file over the current
// configuration. Options applied after this one still win.
func WithConfigFile(path string) Option {
	return func(c *Config) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse config file %s: %w", path, err)
		}
		return nil
	}
}
