package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	HTTP    ServerConfig
	GRPC    GRPCConfig
	Log     LogConfig
	Catalog CatalogConfig
	Render  RenderConfig
	Limits  LimitsConfig
}

type AppConfig struct {
	ServiceName string
}

type ServerConfig struct {
	Host string
	Port string
}

type GRPCConfig struct {
	ServerConfig
	Enabled bool
}

type LogConfig struct {
	Level string
}

type CatalogConfig struct {
	// Path overrides the embedded catalog when set.
	Path string
}

type RenderConfig struct {
	OutputDir string
}

type LimitsConfig struct {
	RequestsPerMinute int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			ServiceName: getEnv("APP_SERVICE_NAME", "vps-showcase"),
		},
		HTTP: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnv("HTTP_PORT", "8080"),
		},
		GRPC: GRPCConfig{
			ServerConfig: ServerConfig{
				Host: getEnv("GRPC_HOST", "0.0.0.0"),
				Port: getEnv("GRPC_PORT", "9090"),
			},
			Enabled: getBoolEnv("GRPC_ENABLED", true),
		},
		Log:     LogConfig{Level: getEnv("LOG_LEVEL", "info")},
		Catalog: CatalogConfig{Path: getEnv("CATALOG_PATH", "")},
		Render:  RenderConfig{OutputDir: getEnv("OUTPUT_DIR", "dist")},
		Limits:  LimitsConfig{RequestsPerMinute: getIntEnv("RATE_LIMIT_PER_MINUTE", 120)},
	}

	if err := validatePort("HTTP_PORT", cfg.HTTP.Port); err != nil {
		return nil, err
	}
	if cfg.GRPC.Enabled {
		if err := validatePort("GRPC_PORT", cfg.GRPC.Port); err != nil {
			return nil, err
		}
	}
	if cfg.Limits.RequestsPerMinute < 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative, got %d", cfg.Limits.RequestsPerMinute)
	}

	return cfg, nil
}

func validatePort(key, value string) error {
	port, err := strconv.Atoi(value)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("invalid %s %q", key, value)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
