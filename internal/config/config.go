package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseDriver   string `mapstructure:"DB_DRIVER"`
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`
	SQLitePath       string `mapstructure:"SQLITE_PATH"`

	// JWT configuration
	JWTSecret       string        `mapstructure:"JWT_SECRET"`
	AccessTokenTTL  time.Duration `mapstructure:"ACCESS_TOKEN_TTL"`
	RefreshTokenTTL time.Duration `mapstructure:"REFRESH_TOKEN_TTL"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Rate limiting, requests per hour
	RateLimitAuthenticated int `mapstructure:"RATE_LIMIT_AUTHENTICATED_PER_HOUR"`
	RateLimitAnonymous     int `mapstructure:"RATE_LIMIT_ANONYMOUS_PER_HOUR"`

	// Redis (token blacklist and realtime relay); empty disables it
	RedisURL string `mapstructure:"REDIS_URL"`

	// Outbound email
	EmailProvider    string `mapstructure:"EMAIL_PROVIDER"`
	ResendAPIKey     string `mapstructure:"RESEND_API_KEY"`
	DefaultFromEmail string `mapstructure:"DEFAULT_FROM_EMAIL"`
	TrackingBaseURL  string `mapstructure:"TRACKING_BASE_URL"`
	EmailMaxRetries  int    `mapstructure:"EMAIL_MAX_RETRIES"`

	// Stripe configuration; empty secret key disables the gateway
	StripeSecretKey     string `mapstructure:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `mapstructure:"STRIPE_WEBHOOK_SECRET"`
	PlansFile           string `mapstructure:"PLANS_FILE"`

	// Error reporting
	SentryDSN string `mapstructure:"SENTRY_DSN"`

	// Background jobs
	JobsEnabled         bool          `mapstructure:"JOBS_ENABLED"`
	CampaignJobInterval time.Duration `mapstructure:"CAMPAIGN_JOB_INTERVAL"`
	EmailJobInterval    time.Duration `mapstructure:"EMAIL_JOB_INTERVAL"`
	ReportJobInterval   time.Duration `mapstructure:"REPORT_JOB_INTERVAL"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	// a missing config.yaml is fine; everything can come from the environment
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.DatabaseURL == "" && config.DatabaseDriver == "postgres" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// defaults apply when neither config.yaml nor the environment sets a key
var defaults = map[string]interface{}{
	"ENVIRONMENT": "development",
	"PORT":        "8000",
	"LOG_LEVEL":   "info",

	"DB_DRIVER":    "postgres",
	"DATABASE_URL": "",
	"DB_HOST":      "localhost",
	"DB_PORT":      "5432",
	"DB_USER":      "postgres",
	"DB_PASSWORD":  "postgres",
	"DB_NAME":      "phishing_simulator",
	"DB_SSL_MODE":  "disable",
	"SQLITE_PATH":  "phishing.db",

	"JWT_SECRET":        defaultJWTSecret,
	"ACCESS_TOKEN_TTL":  60 * time.Minute,
	"REFRESH_TOKEN_TTL": 7 * 24 * time.Hour,

	"ALLOWED_ORIGINS":                   []string{"http://localhost:3000", "http://localhost:8080"},
	"RATE_LIMIT_AUTHENTICATED_PER_HOUR": 1000,
	"RATE_LIMIT_ANONYMOUS_PER_HOUR":     100,
	"REDIS_URL":                         "",

	"EMAIL_PROVIDER":     "smtp",
	"RESEND_API_KEY":     "",
	"DEFAULT_FROM_EMAIL": "security-awareness@localhost",
	"TRACKING_BASE_URL":  "http://localhost:8000",
	"EMAIL_MAX_RETRIES":  3,

	"STRIPE_SECRET_KEY":     "",
	"STRIPE_WEBHOOK_SECRET": "",
	"PLANS_FILE":            "config/plans.yaml",

	"SENTRY_DSN": "",

	"JOBS_ENABLED":          true,
	"CAMPAIGN_JOB_INTERVAL": time.Minute,
	"EMAIL_JOB_INTERVAL":    30 * time.Second,
	"REPORT_JOB_INTERVAL":   5 * time.Minute,
}

func setDefaults() {
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	switch config.DatabaseDriver {
	case "postgres":
		if config.DatabaseName == "" && config.DatabaseURL == "" {
			return fmt.Errorf("database name is required")
		}
	case "sqlite":
		if config.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required when DB_DRIVER=sqlite")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", config.DatabaseDriver)
	}

	switch config.EmailProvider {
	case "smtp":
	case "resend":
		if config.ResendAPIKey == "" {
			return fmt.Errorf("RESEND_API_KEY is required when EMAIL_PROVIDER=resend")
		}
	default:
		return fmt.Errorf("unsupported EMAIL_PROVIDER %q", config.EmailProvider)
	}

	if config.AccessTokenTTL <= 0 || config.RefreshTokenTTL <= 0 {
		return fmt.Errorf("token lifetimes must be positive")
	}

	return nil
}

// DSN returns the connection string for the configured driver
func (c *Config) DSN() string {
	if c.DatabaseDriver == "sqlite" {
		return c.SQLitePath
	}
	return c.DatabaseURL
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// StripeEnabled reports whether a Stripe secret key is configured
func (c *Config) StripeEnabled() bool {
	return c.StripeSecretKey != ""
}
