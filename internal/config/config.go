package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	App struct {
		Port        string
		Debug       bool
		FrontendURL string
	}
	ISS struct {
		BaseURL string
		Timeout time.Duration
	}
	JWST struct {
		Host    string
		APIKey  string
		Email   string
		Timeout time.Duration
	}
	OSDR struct {
		BaseURL string
		Timeout time.Duration
	}
	Astro struct {
		AppID   string
		Secret  string
		BaseURL string
		Timeout time.Duration
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
		Enabled  bool
	}
	RateLimit struct {
		RequestsPerSecond int
		Burst             int
	}
	Export struct {
		OutputDir string
	}
}

func Load() *Config {
	cfg := &Config{}

	// App
	cfg.App.Port = getEnv("PORT", "8080")
	cfg.App.Debug = getEnvAsBool("DEBUG", false)
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")

	// ISS (телеметрия и тренд отдаются одним апстримом)
	cfg.ISS.BaseURL = getEnv("ISS_BASE_URL", "http://rust_iss:3000")
	cfg.ISS.Timeout = getEnvAsDuration("ISS_TIMEOUT", 5*time.Second)

	// JWST
	cfg.JWST.Host = getEnv("JWST_HOST", "https://api.jwstapi.com")
	cfg.JWST.APIKey = getEnv("JWST_API_KEY", "")
	cfg.JWST.Email = getEnv("JWST_EMAIL", "")
	cfg.JWST.Timeout = getEnvAsDuration("JWST_TIMEOUT", 30*time.Second)

	// OSDR живет за тем же базовым URL, что и ISS, но со своим таймаутом
	cfg.OSDR.BaseURL = getEnv("OSDR_BASE_URL", cfg.ISS.BaseURL)
	cfg.OSDR.Timeout = getEnvAsDuration("OSDR_TIMEOUT", 5*time.Second)

	// Astro
	cfg.Astro.AppID = getEnv("ASTRO_APP_ID", "")
	cfg.Astro.Secret = getEnv("ASTRO_APP_SECRET", "")
	cfg.Astro.BaseURL = getEnv("ASTRO_BASE_URL", "https://api.astronomyapi.com/api/v2")
	cfg.Astro.Timeout = getEnvAsDuration("ASTRO_TIMEOUT", 25*time.Second)

	// Redis (опционально, только счетчики запросов)
	cfg.Redis.Host = getEnv("REDIS_HOST", "localhost")
	cfg.Redis.Port = getEnv("REDIS_PORT", "6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", 0)
	cfg.Redis.Enabled = getEnvAsBool("REDIS_ENABLED", true)

	// Rate Limit
	cfg.RateLimit.RequestsPerSecond = getEnvAsInt("RATE_LIMIT_RPS", 10)
	cfg.RateLimit.Burst = getEnvAsInt("RATE_LIMIT_BURST", 20)

	// Export
	cfg.Export.OutputDir = getEnv("EXPORT_OUTPUT_DIR", "./data/exports")

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if dur, err := time.ParseDuration(value); err == nil {
			return dur
		}
	}
	return defaultValue
}
