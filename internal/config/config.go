package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"marketai/internal/models"
	"marketai/internal/tracing"
	"marketai/internal/validation"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// TLS (optional). Both files must be set to serve HTTPS.
	TLSCertFile string
	TLSKeyFile  string

	// Session
	SessionSecret      string // Used for encrypting cookies
	SessionIdleTimeout time.Duration

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Redis (optional). When set, sessions and activity logs are shared between replicas.
	RedisURL string

	// Completion provider
	AIProvider        string // "groq" or "gemini"
	GroqAPIKey        string
	GroqBaseURL       string
	GroqModel         string
	GeminiAPIKey      string
	GeminiModel       string
	GeminiBaseURL     string // Empty uses the public Gemini endpoint
	AIModelName       string // Human-readable model name reported by /api/health
	CompletionTimeout time.Duration

	// Activity log
	ActivityDisplayLimit int
	JanitorInterval      time.Duration

	// Logging
	LogLevel  string
	LogFormat string // "console" or "json"

	// Tracing
	TracesExporter string // "none" or "stdout"

	// App metadata
	AppName    string
	AppVersion string

	// Per-use-case completion settings
	Profiles map[models.UseCase]Profile
}

// Provider names
const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first if present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	return &Config{
		Env:                  getEnv("ENV", "development"),
		ServerAddr:           getEnv("SERVER_ADDR", ":5000"),
		BaseURL:              getEnv("BASE_URL", "http://localhost:5000"),
		TLSCertFile:          getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:           getEnv("TLS_KEY_FILE", ""),
		SessionSecret:        getEnv("SESSION_SECRET", "dev-secret-key-change-me-in-production"),
		SessionIdleTimeout:   getEnvDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
		CORSOrigins:          getEnv("CORS_ORIGINS", ""),
		RedisURL:             getEnv("REDIS_URL", ""),
		AIProvider:           getEnv("AI_PROVIDER", ProviderGroq),
		GroqAPIKey:           getEnv("GROQ_API_KEY", ""),
		GroqBaseURL:          getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GroqModel:            getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		GeminiAPIKey:         getEnv("GEMINI_API_KEY", ""),
		GeminiModel:          getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiBaseURL:        getEnv("GEMINI_BASE_URL", ""),
		AIModelName:          getEnv("AI_MODEL_NAME", "LLaMA 3.3 70B"),
		CompletionTimeout:    getEnvDuration("COMPLETION_TIMEOUT", 60*time.Second),
		ActivityDisplayLimit: getEnvInt("ACTIVITY_DISPLAY_LIMIT", 5),
		JanitorInterval:      getEnvDuration("JANITOR_INTERVAL", 5*time.Minute),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "console"),
		TracesExporter:       getEnv("OTEL_TRACES_EXPORTER", "none"),
		AppName:              getEnv("APP_NAME", "MarketAI Suite"),
		AppVersion:           getEnv("APP_VERSION", "1.0.0"),
		Profiles:             DefaultProfiles(),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %s", key, value, fallback)
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// TLSEnabled returns true if both a certificate and key are configured.
func (c *Config) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// UsesRedis returns true if a Redis URL is configured.
func (c *Config) UsesRedis() bool {
	return c.RedisURL != ""
}

// Profile returns the completion settings for a use case.
func (c *Config) Profile(u models.UseCase) Profile {
	if p, ok := c.Profiles[u]; ok {
		return p
	}
	return DefaultProfiles()[u]
}

// ModelID returns the provider model identifier in use.
func (c *Config) ModelID() string {
	if c.AIProvider == ProviderGemini {
		return c.GeminiModel
	}
	return c.GroqModel
}

// Validate reports the first configuration value the server cannot run with.
func (c *Config) Validate() error {
	switch c.AIProvider {
	case ProviderGroq:
		if valid, msg := validation.ValidateURL(c.GroqBaseURL); !valid {
			return fmt.Errorf("GROQ_BASE_URL: %s", msg)
		}
	case ProviderGemini:
		if c.GeminiBaseURL != "" {
			if valid, msg := validation.ValidateURL(c.GeminiBaseURL); !valid {
				return fmt.Errorf("GEMINI_BASE_URL: %s", msg)
			}
		}
	default:
		return fmt.Errorf("AI_PROVIDER: unknown provider %q", c.AIProvider)
	}

	if c.BaseURL != "" {
		if valid, msg := validation.ValidateOrigins(c.BaseURL); !valid {
			return fmt.Errorf("BASE_URL: %s", msg)
		}
	}
	if c.CORSOrigins != "" {
		if valid, msg := validation.ValidateOrigins(c.CORSOrigins); !valid {
			return fmt.Errorf("CORS_ORIGINS: %s", msg)
		}
	}
	if c.UsesRedis() {
		if valid, msg := validation.ValidateRedisURL(c.RedisURL); !valid {
			return fmt.Errorf("REDIS_URL: %s", msg)
		}
	}
	if !tracing.Valid(c.TracesExporter) {
		return fmt.Errorf("OTEL_TRACES_EXPORTER: unknown exporter %q", c.TracesExporter)
	}
	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		return fmt.Errorf("TLS_CERT_FILE and TLS_KEY_FILE must be set together")
	}
	if c.ActivityDisplayLimit < 0 {
		return fmt.Errorf("ACTIVITY_DISPLAY_LIMIT: must not be negative")
	}
	if c.JanitorInterval <= 0 {
		return fmt.Errorf("JANITOR_INTERVAL: must be positive")
	}
	return nil
}
