package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret             = "a-very-secret-key-should-be-longer-and-random"
	defaultBaseCurrency          = "GHS"
	defaultTaxRate               = "0.15"
	defaultProjectionConcurrency = 8
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	JWTSecret      string
	MigrationsPath string
	LogLevel       string

	// RateLimit is a ulule/limiter formatted rate, e.g. "300-M". Empty disables limiting.
	RateLimit          string
	CORSAllowedOrigins []string

	// Projection defaults
	DefaultBaseCurrency   string
	TaxRate               decimal.Decimal
	ProjectionConcurrency int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("DEFAULT_BASE_CURRENCY", defaultBaseCurrency)
	v.SetDefault("TAX_RATE", defaultTaxRate)
	v.SetDefault("PROJECTION_CONCURRENCY", defaultProjectionConcurrency)
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:    v.GetString("PGSQL_URL"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		LogLevel:       strings.ToLower(v.GetString("LOG_LEVEL")),
		RateLimit:      strings.TrimSpace(v.GetString("RATE_LIMIT")),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.IsProduction && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.DefaultBaseCurrency = strings.ToUpper(strings.TrimSpace(v.GetString("DEFAULT_BASE_CURRENCY")))
	if len(cfg.DefaultBaseCurrency) != 3 {
		return nil, fmt.Errorf("invalid DEFAULT_BASE_CURRENCY %q: expected a 3-letter code", cfg.DefaultBaseCurrency)
	}

	taxRateStr := v.GetString("TAX_RATE")
	taxRate, err := decimal.NewFromString(taxRateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TAX_RATE %q: %w", taxRateStr, err)
	}
	if taxRate.IsNegative() {
		return nil, fmt.Errorf("invalid TAX_RATE %q: must not be negative", taxRateStr)
	}
	cfg.TaxRate = taxRate

	cfg.ProjectionConcurrency = v.GetInt("PROJECTION_CONCURRENCY")
	if cfg.ProjectionConcurrency < 1 {
		log.Printf("Warning: Invalid value for PROJECTION_CONCURRENCY (%d). Defaulting to %d.\n", cfg.ProjectionConcurrency, defaultProjectionConcurrency)
		cfg.ProjectionConcurrency = defaultProjectionConcurrency
	}

	return cfg, nil
}
