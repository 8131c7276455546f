package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the SDK and the mock API server.
type Config struct {
	Env         string
	APIBaseURL  string
	TokenFile   string
	HTTPTimeout time.Duration

	// Mock API server settings.
	ListenAddr      string
	JWTSecret       string
	FixtureSeed     int64
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Load reads environment variables and .env (if present).
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:             getEnv("APP_ENV", "development"),
		APIBaseURL:      getEnv("EVM_API_BASE_URL", "http://localhost:7118/api"),
		TokenFile:       getEnv("EVM_TOKEN_FILE", ".voltmate-tokens.json"),
		HTTPTimeout:     getDuration("EVM_HTTP_TIMEOUT", 15*time.Second),
		ListenAddr:      getEnv("EVM_LISTEN_ADDR", ":7118"),
		JWTSecret:       os.Getenv("EVM_JWT_SECRET"),
		FixtureSeed:     int64(getInt("EVM_FIXTURE_SEED", 1)),
		AccessTokenTTL:  getDuration("EVM_ACCESS_TOKEN_TTL", 30*time.Minute),
		RefreshTokenTTL: getDuration("EVM_REFRESH_TOKEN_TTL", 7*24*time.Hour),
		ReadTimeout:     getDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getDuration("HTTP_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:     getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
	return cfg, nil
}

// LoadServer is Load plus the checks only the mock API server needs.
func LoadServer() (Config, error) {
	cfg, err := Load()
	if err != nil {
		return cfg, err
	}
	if cfg.JWTSecret == "" {
		return cfg, errors.New("EVM_JWT_SECRET is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}

func getInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		// Support seconds as integer without suffix.
		if secs, convErr := strconv.Atoi(val); convErr == nil {
			return time.Duration(secs) * time.Second
		}
		return fallback
	}
	return d
}
