package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseURL  string
	JWTSecretKey string
	ServerPort   int

	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
	HighlightsPrefix  string

	LiveRefreshInterval time.Duration
	CORSAllowedOrigins  []string
	LoginRatePerMinute  int
	TickerMessages      []string
}

const (
	defaultPort                = 8080
	defaultHighlightsPrefix    = "fest-highlights/"
	defaultLiveRefreshInterval = 2 * time.Minute
	defaultLoginRatePerMinute  = 10
)

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup собирает Config из произвольного источника переменных.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	cfg := &Config{
		DatabaseURL:       get("DATABASE_URL"),
		JWTSecretKey:      get("JWT_SECRET_KEY"),
		R2AccountID:       get("R2_ACCOUNT_ID"),
		R2AccessKeyID:     get("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: get("R2_SECRET_ACCESS_KEY"),
		R2BucketName:      get("R2_BUCKET_NAME"),
		R2PublicBaseURL:   get("R2_PUBLIC_BASE_URL"),
		HighlightsPrefix:  defaultHighlightsPrefix,
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}
	if cfg.JWTSecretKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	port, err := intOrDefault(get("SERVER_PORT"), defaultPort)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}
	cfg.ServerPort = port

	if prefix, ok := lookup("HIGHLIGHTS_PREFIX"); ok {
		cfg.HighlightsPrefix = strings.TrimSpace(prefix)
	}

	cfg.LiveRefreshInterval = defaultLiveRefreshInterval
	if raw := get("LIVE_REFRESH_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid LIVE_REFRESH_INTERVAL environment variable: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("LIVE_REFRESH_INTERVAL must be positive, got %s", d)
		}
		cfg.LiveRefreshInterval = d
	}

	cfg.CORSAllowedOrigins = splitList(get("CORS_ALLOWED_ORIGINS"), ",")
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	rate, err := intOrDefault(get("LOGIN_RATE_PER_MINUTE"), defaultLoginRatePerMinute)
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_RATE_PER_MINUTE environment variable: %w", err)
	}
	if rate <= 0 {
		return nil, fmt.Errorf("LOGIN_RATE_PER_MINUTE must be positive, got %d", rate)
	}
	cfg.LoginRatePerMinute = rate

	cfg.TickerMessages = splitList(get("TICKER_MESSAGES"), "|")

	return cfg, nil
}

// BlobStoreConfigured сообщает, заданы ли все настройки R2.
func (c *Config) BlobStoreConfigured() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" &&
		c.R2BucketName != "" && c.R2PublicBaseURL != ""
}

func intOrDefault(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func splitList(raw, sep string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
