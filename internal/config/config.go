package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers understood by STORE_DRIVER.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Config holds configuration shared by the gateway and the backend services.
type Config struct {
	Env      string
	LogLevel string

	// Listen ports
	Host          string
	GatewayPort   string
	UsersPort     string
	PortfolioPort string
	GoalsPort     string
	AIPort        string

	// Upstreams used by the gateway and by service-to-service calls
	UsersURL     string
	PortfolioURL string
	GoalsURL     string
	AIURL        string

	UpstreamTimeout          time.Duration
	GatewayForwardAllHeaders bool

	// Storage
	StoreDriver string
	StoreDSN    string

	// AI mocks
	LlamaAPIURL    string
	LlamaModel     string
	LlamaAPIKey    string
	CerebrasAPIURL string
	CerebrasAPIKey string
}

// Load loads configuration from a .env file (when present) and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", ""),

		Host:          getEnv("HOST", ""),
		GatewayPort:   getEnv("GATEWAY_PORT", "8080"),
		UsersPort:     getEnv("USERS_PORT", "8001"),
		PortfolioPort: getEnv("PORTFOLIO_PORT", "8002"),
		GoalsPort:     getEnv("GOALS_PORT", "8003"),
		AIPort:        getEnv("AI_PORT", "8004"),

		// Default to loopback for local dev; override via env in Docker
		UsersURL:     getEnv("USERS_URL", "http://127.0.0.1:8001"),
		PortfolioURL: getEnv("PORTFOLIO_URL", "http://127.0.0.1:8002"),
		GoalsURL:     getEnv("GOALS_URL", "http://127.0.0.1:8003"),
		AIURL:        getEnv("AI_URL", "http://127.0.0.1:8004"),

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", StoreMemory)),
		StoreDSN:    getEnv("STORE_DSN", ""),

		LlamaAPIURL:    getEnv("LLAMA_API_URL", "https://mock-llama.local"),
		LlamaModel:     getEnv("LLAMA_MODEL", "meta-llama-4"),
		LlamaAPIKey:    getEnv("LLAMA_API_KEY", "demo"),
		CerebrasAPIURL: getEnv("CEREBRAS_API_URL", "https://mock-cerebras.local"),
		CerebrasAPIKey: getEnv("CEREBRAS_API_KEY", "demo"),
	}

	timeout, err := parseTimeout(os.Getenv("UPSTREAM_TIMEOUT"))
	if err != nil {
		return nil, err
	}
	cfg.UpstreamTimeout = timeout

	forwardAll, err := parseBool(os.Getenv("GATEWAY_FORWARD_ALL_HEADERS"), false)
	if err != nil {
		return nil, fmt.Errorf("invalid GATEWAY_FORWARD_ALL_HEADERS value: %w", err)
	}
	cfg.GatewayForwardAllHeaders = forwardAll

	switch cfg.StoreDriver {
	case StoreMemory:
	case StoreSQLite:
		if cfg.StoreDSN == "" {
			cfg.StoreDSN = "file::memory:?cache=shared"
		}
	case StorePostgres:
		if cfg.StoreDSN == "" {
			return nil, fmt.Errorf("STORE_DSN is required when STORE_DRIVER=postgres")
		}
	default:
		return nil, fmt.Errorf("invalid STORE_DRIVER %q: must be memory, sqlite, or postgres", cfg.StoreDriver)
	}

	return cfg, nil
}

// Addr returns the listen address for the given port.
func (c *Config) Addr(port string) string {
	return c.Host + ":" + port
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 10 * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid UPSTREAM_TIMEOUT %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("UPSTREAM_TIMEOUT must be positive, got %v", d)
	}
	return d, nil
}

func parseBool(s string, defaultVal bool) (bool, error) {
	if s == "" {
		return defaultVal, nil
	}
	switch strings.ToLower(s) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("must be true, false, 1, or 0, got %q", s)
	}
}
