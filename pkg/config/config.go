package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App            AppConfig            `koanf:"app"`
	Server         ServerConfig         `koanf:"server"`
	Recommendation RecommendationConfig `koanf:"recommendation"`
}

type AppConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"`
}

type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            string        `koanf:"port"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
	CORSOrigins     []string      `koanf:"cors_origins"`

	// requests per second per client on write endpoints; 0 disables limiting
	WriteRateLimit float64 `koanf:"write_rate_limit"`
	WriteRateBurst int     `koanf:"write_rate_burst"`
}

type RecommendationConfig struct {
	Limit int `koanf:"limit"`
}

// ConfigPathEnvVar overrides the YAML config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

// env var -> koanf path
var envMappings = map[string]string{
	"app_name":             "app.name",
	"app_version":          "app.version",
	"app_env":              "app.environment",
	"server_host":          "server.host",
	"port":                 "server.port",
	"shutdown_timeout":     "server.shutdown_timeout",
	"request_timeout":      "server.request_timeout",
	"cors_origins":         "server.cors_origins",
	"write_rate_limit":     "server.write_rate_limit",
	"write_rate_burst":     "server.write_rate_burst",
	"recommendation_limit": "recommendation.limit",
}

var sliceConfigPaths = []string{
	"server.cors_origins",
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "SocialBook API",
			Version:     "1.0.0",
			Environment: "development",
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            "5000",
			ShutdownTimeout: 10 * time.Second,
			RequestTimeout:  10 * time.Second,
			CORSOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
			WriteRateLimit:  10,
			WriteRateBurst:  20,
		},
		Recommendation: RecommendationConfig{
			Limit: 5,
		},
	}
}

// Load reads configuration with precedence env > config file > defaults.
// A .env file in the working directory is loaded into the environment first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("missing server port")
	}

	if c.Recommendation.Limit <= 0 {
		return errors.New("recommendation limit must be positive")
	}

	if c.Server.WriteRateLimit < 0 {
		return errors.New("write rate limit cannot be negative")
	}

	if c.Server.WriteRateLimit > 0 && c.Server.WriteRateBurst <= 0 {
		return errors.New("write rate burst must be positive when rate limiting is enabled")
	}

	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}

	return nil
}

// Address is the listen address for the HTTP server.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// envTransformFunc maps known env vars onto koanf paths and drops everything else.
func envTransformFunc(key string) string {
	if path, ok := envMappings[strings.ToLower(key)]; ok {
		return path
	}
	return ""
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		raw, ok := k.Get(path).(string)
		if !ok {
			continue
		}

		parts := strings.Split(raw, ",")
		values := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				values = append(values, p)
			}
		}

		if err := k.Set(path, values); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}
