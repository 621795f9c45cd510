package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port              string
	AuthServicePort   string
	DatabaseURL       string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Outbound authentication service used by the app server
	AuthServiceURL     string
	AuthServiceTimeout time.Duration

	// Authentication service knobs
	AuthLoginRate      string   `mapstructure:"AUTH_LOGIN_RATE"` // ulule/limiter format, e.g. "5-M"
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	MigrationsPath     string   `mapstructure:"MIGRATIONS_PATH"`

	PostHogAPIKey string `mapstructure:"POSTHOG_API_KEY"`
}

const (
	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer = "community-connect"
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("AUTH_SERVICE_PORT", "8081")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "12h")
	v.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	v.SetDefault("AUTH_SERVICE_URL", "http://localhost:8081")
	v.SetDefault("AUTH_SERVICE_TIMEOUT", "5s")
	v.SetDefault("AUTH_LOGIN_RATE", "5-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Port:            v.GetString("PORT"),
		AuthServicePort: v.GetString("AUTH_SERVICE_PORT"),
		DatabaseURL:     v.GetString("PGSQL_URL"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTIssuer:       v.GetString("JWT_ISSUER"),
		AuthServiceURL:  strings.TrimRight(v.GetString("AUTH_SERVICE_URL"), "/"),
		AuthLoginRate:   v.GetString("AUTH_LOGIN_RATE"),
		PostHogAPIKey:   v.GetString("POSTHOG_API_KEY"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.AuthServicePort == "" {
		cfg.AuthServicePort = "8081"
	}
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. The authentication service will keep credentials in memory.")
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
	}

	cfg.JWTExpiryDuration = durationOr(v, "JWT_EXPIRY_DURATION", 12*time.Hour)
	cfg.AuthServiceTimeout = durationOr(v, "AUTH_SERVICE_TIMEOUT", 5*time.Second)

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	return cfg
}

func durationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
