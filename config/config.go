package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server settings
	ServerPort   string        `json:"server_port"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
	IdleTimeout  time.Duration `json:"idle_timeout"`
	Debug        bool          `json:"debug"`

	// Application paths
	LogDir string `json:"log_dir"`

	// Middleware settings
	Middleware MiddlewareConfig `json:"middleware"`

	// CORS Configuration
	CORS CORSConfig `json:"cors"`

	// Rate Limiting
	RateLimit RateLimitConfig `json:"rate_limit"`

	// Transcript retrieval
	Transcript TranscriptConfig `json:"transcript"`

	// Generative model
	LLM LLMConfig `json:"llm"`

	// Application version
	Version string `json:"version"`

	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type MiddlewareConfig struct {
	EnableRecover   bool `json:"enable_recover"`
	EnableRequestID bool `json:"enable_request_id"`
	EnableLogger    bool `json:"enable_logger"`
	EnableCORS      bool `json:"enable_cors"`
	EnableRateLimit bool `json:"enable_rate_limit"`
}

type CORSConfig struct {
	AllowedOrigins []string `json:"allowed_origins"`
	AllowedMethods []string `json:"allowed_methods"`
	AllowedHeaders []string `json:"allowed_headers"`
}

type RateLimitConfig struct {
	Enabled   bool `json:"enabled"`
	PerMinute int  `json:"per_minute"`
	PerDay    int  `json:"per_day"`
}

type TranscriptConfig struct {
	BaseURL            string        `json:"base_url"`
	Timeout            time.Duration `json:"timeout"`
	UserAgent          string        `json:"user_agent"`
	RequestsPerSecond  float64       `json:"requests_per_second"`
	CacheSize          int           `json:"cache_size"`
	SupportedLanguages []string      `json:"supported_languages"`
	DefaultLanguage    string        `json:"default_language"`
}

type LLMConfig struct {
	APIKey  string        `json:"-"`
	Model   string        `json:"model"`
	Timeout time.Duration `json:"timeout"`
}

func defaultDevMiddleware() MiddlewareConfig {
	return MiddlewareConfig{
		EnableRecover:   true,
		EnableRequestID: true,
		EnableLogger:    true,
		EnableCORS:      true,
		EnableRateLimit: false, // Disabled for local testing
	}
}

func defaultProdMiddleware() MiddlewareConfig {
	return MiddlewareConfig{
		EnableRecover:   true,
		EnableRequestID: true,
		EnableLogger:    true,
		EnableCORS:      true,
		EnableRateLimit: true,
	}
}

// Load reads configuration from the environment, after sourcing an optional
// .env file. Values are read once at startup and never mutated.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:   getEnv("PORT", "5000"),
		ReadTimeout:  getEnvAsDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout: getEnvAsDuration("WRITE_TIMEOUT", 2*time.Minute),
		IdleTimeout:  getEnvAsDuration("IDLE_TIMEOUT", 60*time.Second),
		Debug:        getEnvAsBool("DEBUG", false),

		LogDir: getEnv("LOG_DIR", "./logs"),

		Version: getEnv("VERSION", "1.1.0"),

		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		CORS: CORSConfig{
			AllowedOrigins: getEnvAsStringSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods: getEnvAsStringSlice(
				"CORS_ALLOWED_METHODS",
				[]string{"GET", "POST", "OPTIONS"},
			),
			AllowedHeaders: getEnvAsStringSlice("CORS_ALLOWED_HEADERS", []string{"Content-Type"}),
		},

		RateLimit: RateLimitConfig{
			Enabled:   getEnvAsBool("RATE_LIMIT_ENABLED", true),
			PerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 5),
			PerDay:    getEnvAsInt("RATE_LIMIT_PER_DAY", 100),
		},

		Transcript: TranscriptConfig{
			BaseURL:            getEnv("TRANSCRIPT_BASE_URL", "https://www.youtube.com/api/timedtext"),
			Timeout:            getEnvAsDuration("TRANSCRIPT_TIMEOUT", 30*time.Second),
			UserAgent:          getEnv("TRANSCRIPT_USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"),
			RequestsPerSecond:  getEnvAsFloat("TRANSCRIPT_RPS", 5),
			CacheSize:          getEnvAsInt("TRANSCRIPT_CACHE_SIZE", 100),
			SupportedLanguages: getEnvAsStringSlice("SUPPORTED_LANGUAGES", []string{"fr", "en"}),
			DefaultLanguage:    getEnv("DEFAULT_LANGUAGE", "fr"),
		},

		LLM: LLMConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			Timeout: getEnvAsDuration("LLM_TIMEOUT", 90*time.Second),
		},

		Middleware: defaultDevMiddleware(),
	}

	if os.Getenv("ENV") == "production" {
		cfg.Middleware = defaultProdMiddleware()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("server port is required")
	}
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("read timeout must be positive")
	}
	if c.WriteTimeout <= 0 {
		return fmt.Errorf("write timeout must be positive")
	}
	if c.Transcript.Timeout <= 0 {
		return fmt.Errorf("transcript timeout must be positive")
	}
	if c.Transcript.CacheSize <= 0 {
		return fmt.Errorf("transcript cache size must be positive")
	}
	if c.Transcript.DefaultLanguage == "" {
		return fmt.Errorf("default language is required")
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("llm timeout must be positive")
	}
	if c.RateLimit.Enabled && (c.RateLimit.PerMinute <= 0 || c.RateLimit.PerDay <= 0) {
		return fmt.Errorf("rate limit quotas must be positive when enabled")
	}
	if os.Getenv("ENV") == "production" && c.LLM.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	return nil
}

// Helper functions for reading environment variables
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsStringSlice(key string, defaultValue []string) []string {
	if value, exists := os.LookupEnv(key); exists {
		if value = strings.TrimSpace(value); value != "" {
			return strings.Split(value, ",")
		}
	}
	return defaultValue
}
