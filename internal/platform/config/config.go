package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string

	// QuietPeriod is the debounce window: a purse conversion runs only after
	// this long passes with no further change notifications for the actor.
	QuietPeriod time.Duration

	// ShowNotificationsDefault seeds the per-user notification preference.
	ShowNotificationsDefault bool

	// ChangesRateLimit is the ulule/limiter formatted rate for the inbound
	// change webhook, e.g. "60-M".
	ChangesRateLimit string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("QUIET_PERIOD", "100ms")
	viper.SetDefault("SHOW_NOTIFICATIONS_DEFAULT", true)
	viper.SetDefault("CHANGES_RATE_LIMIT", "60-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	quietStr := viper.GetString("QUIET_PERIOD")
	quiet, err := time.ParseDuration(quietStr)
	if err != nil || quiet <= 0 {
		quiet = 100 * time.Millisecond
		log.Printf("Warning: Invalid value for QUIET_PERIOD ('%s'). Defaulting to %s.\n", quietStr, quiet)
	}
	cfg.QuietPeriod = quiet

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.ShowNotificationsDefault = viper.GetBool("SHOW_NOTIFICATIONS_DEFAULT")
	cfg.ChangesRateLimit = viper.GetString("CHANGES_RATE_LIMIT")
	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")

	return cfg, nil
}
