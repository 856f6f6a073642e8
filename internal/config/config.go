package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `json:"server"`
	Redis    RedisConfig    `json:"redis"`
	Ares     AresConfig     `json:"ares"`
	Justice  JusticeConfig  `json:"justice"`
	Log      LogConfig      `json:"log"`
	Security SecurityConfig `json:"security"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port         int    `json:"port"`
	Environment  string `json:"environment"`
	ReadTimeout  int    `json:"read_timeout"`
	WriteTimeout int    `json:"write_timeout"`
	IdleTimeout  int    `json:"idle_timeout"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host         string        `json:"host"`
	Port         int           `json:"port"`
	Password     string        `json:"password"`
	DB           int           `json:"db"`
	PoolSize     int           `json:"pool_size"`
	DialTimeout  time.Duration `json:"dial_timeout"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
}

// AresConfig holds configuration for the ARES business registry upstream
type AresConfig struct {
	BaseURL        string        `json:"base_url"`
	Timeout        time.Duration `json:"timeout"`
	SearchCacheTTL time.Duration `json:"search_cache_ttl"`
	DetailCacheTTL time.Duration `json:"detail_cache_ttl"`
	ThrottleMax    int           `json:"throttle_max"`
	ThrottleWindow time.Duration `json:"throttle_window"`
}

// JusticeConfig holds configuration for the justice.cz filings upstream
type JusticeConfig struct {
	BaseURL          string        `json:"base_url"`
	Timeout          time.Duration `json:"timeout"`
	DocumentCacheTTL time.Duration `json:"document_cache_ttl"`
	CSVCacheTTL      time.Duration `json:"csv_cache_ttl"`
	ThrottleMax      int           `json:"throttle_max"`
	ThrottleWindow   time.Duration `json:"throttle_window"`
	MaxPDFSizeMB     int           `json:"max_pdf_size_mb"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// SecurityConfig holds security configuration
type SecurityConfig struct {
	RateLimit RateLimitConfig `json:"rate_limit"`
	CORS      CORSConfig      `json:"cors"`
}

// RateLimitConfig holds inbound rate limiting configuration
type RateLimitConfig struct {
	RequestsPerMinute int           `json:"requests_per_minute"`
	BurstSize         int           `json:"burst_size"`
	CleanupInterval   time.Duration `json:"cleanup_interval"`
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string `json:"allowed_origins"`
	AllowedMethods   []string `json:"allowed_methods"`
	AllowedHeaders   []string `json:"allowed_headers"`
	AllowCredentials bool     `json:"allow_credentials"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnvAsInt("PORT", 8080),
			Environment:  getEnv("ENVIRONMENT", "development"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 30),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 60),
			IdleTimeout:  getEnvAsInt("IDLE_TIMEOUT", 60),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnvAsInt("REDIS_PORT", 6379),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			DialTimeout:  time.Duration(getEnvAsInt("REDIS_DIAL_TIMEOUT", 5)) * time.Second,
			ReadTimeout:  time.Duration(getEnvAsInt("REDIS_READ_TIMEOUT", 3)) * time.Second,
			WriteTimeout: time.Duration(getEnvAsInt("REDIS_WRITE_TIMEOUT", 3)) * time.Second,
		},
		Ares: AresConfig{
			BaseURL:        getEnv("ARES_BASE_URL", "https://ares.gov.cz/ekonomicke-subjekty-v-be/rest/ekonomicke-subjekty"),
			Timeout:        time.Duration(getEnvAsInt("ARES_TIMEOUT", 15)) * time.Second,
			SearchCacheTTL: time.Duration(getEnvAsInt("ARES_SEARCH_CACHE_TTL", 900)) * time.Second,
			DetailCacheTTL: time.Duration(getEnvAsInt("ARES_DETAIL_CACHE_TTL", 3600)) * time.Second,
			ThrottleMax:    getEnvAsInt("ARES_THROTTLE_MAX", 12),
			ThrottleWindow: time.Duration(getEnvAsInt("ARES_THROTTLE_WINDOW", 60)) * time.Second,
		},
		Justice: JusticeConfig{
			BaseURL:          getEnv("JUSTICE_BASE_URL", "https://or.justice.cz"),
			Timeout:          time.Duration(getEnvAsInt("JUSTICE_TIMEOUT", 30)) * time.Second,
			DocumentCacheTTL: time.Duration(getEnvAsInt("JUSTICE_DOCUMENT_CACHE_TTL", 86400)) * time.Second,
			CSVCacheTTL:      time.Duration(getEnvAsInt("JUSTICE_CSV_CACHE_TTL", 43200)) * time.Second,
			ThrottleMax:      getEnvAsInt("JUSTICE_THROTTLE_MAX", 30),
			ThrottleWindow:   time.Duration(getEnvAsInt("JUSTICE_THROTTLE_WINDOW", 60)) * time.Second,
			MaxPDFSizeMB:     getEnvAsInt("JUSTICE_MAX_PDF_MB", 50),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Security: SecurityConfig{
			RateLimit: RateLimitConfig{
				RequestsPerMinute: getEnvAsInt("RATE_LIMIT_RPM", 100),
				BurstSize:         getEnvAsInt("RATE_LIMIT_BURST", 10),
				CleanupInterval:   time.Duration(getEnvAsInt("RATE_LIMIT_CLEANUP", 60)) * time.Second,
			},
			CORS: CORSConfig{
				AllowedOrigins:   []string{"*"},
				AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
				AllowedHeaders:   []string{"*"},
				AllowCredentials: false,
			},
		},
	}

	return cfg, nil
}

// Helper functions
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
