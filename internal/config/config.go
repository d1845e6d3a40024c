package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries process configuration. Values come from the
// environment, optionally seeded from a .env file in development.
type Config struct {
	Environment string
	HTTPAddr    string

	// SeedDemoAccounts loads the demo fixture into the empty store at
	// startup.
	SeedDemoAccounts bool

	// SubmitDelay is the artificial latency applied to account
	// mutations; SearchSettleDelay is the window before search results
	// count as settled. Both model the original UI's simulated network.
	SubmitDelay       time.Duration
	SearchSettleDelay time.Duration

	RateLimit       int
	RateLimitWindow time.Duration

	AuditTrailSize int

	CORSAllowOrigins []string

	TracingEnabled       bool
	TracingEndpoint      string
	TracingProtocol      string
	TracingSamplingRatio float64
	ServiceVersion       string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Environment:          getString("APP_ENV", "development"),
		HTTPAddr:             getString("HTTP_ADDR", ":8080"),
		SeedDemoAccounts:     getBool("SEED_DEMO_ACCOUNTS", true),
		SubmitDelay:          getDuration("SUBMIT_DELAY", time.Second),
		SearchSettleDelay:    getDuration("SEARCH_SETTLE_DELAY", 800*time.Millisecond),
		RateLimit:            getInt("RATE_LIMIT", 60),
		RateLimitWindow:      getDuration("RATE_LIMIT_WINDOW", time.Minute),
		AuditTrailSize:       getInt("AUDIT_TRAIL_SIZE", 500),
		CORSAllowOrigins:     getList("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000"}),
		TracingEnabled:       getBool("TRACING_ENABLED", false),
		TracingEndpoint:      getString("OTLP_ENDPOINT", ""),
		TracingProtocol:      getString("OTLP_PROTOCOL", "grpc"),
		TracingSamplingRatio: getFloat("TRACING_SAMPLING_RATIO", 0.1),
		ServiceVersion:       getString("SERVICE_VERSION", "dev"),
	}
	return cfg.withDefaults(), nil
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c Config) withDefaults() Config {
	if c.HTTPAddr == "" {
		c.HTTPAddr = ":8080"
	}
	if c.SubmitDelay < 0 {
		c.SubmitDelay = 0
	}
	if c.SearchSettleDelay < 0 {
		c.SearchSettleDelay = 0
	}
	if c.RateLimit <= 0 {
		c.RateLimit = 60
	}
	if c.RateLimitWindow <= 0 {
		c.RateLimitWindow = time.Minute
	}
	if c.AuditTrailSize <= 0 {
		c.AuditTrailSize = 500
	}
	return c
}

func getString(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getFloat(key string, fallback float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getList(key string, fallback []string) []string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
