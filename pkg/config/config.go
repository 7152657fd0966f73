package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL      string
	Port             string
	IsProduction     bool
	RunMigrations    bool
	EntryFetchLimit  int
	ExportRateLimit  string
	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and a .env file if
// present. Environment variables override .env values.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RUN_MIGRATIONS", false)
	viper.SetDefault("ENTRY_FETCH_LIMIT", 100)
	viper.SetDefault("EXPORT_RATE_LIMIT", "10-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RunMigrations = viper.GetBool("RUN_MIGRATIONS")

	cfg.EntryFetchLimit = viper.GetInt("ENTRY_FETCH_LIMIT")
	if cfg.EntryFetchLimit <= 0 {
		log.Printf("Warning: Invalid ENTRY_FETCH_LIMIT. Defaulting to 100.\n")
		cfg.EntryFetchLimit = 100
	}

	cfg.ExportRateLimit = viper.GetString("EXPORT_RATE_LIMIT")
	if cfg.ExportRateLimit == "" {
		cfg.ExportRateLimit = "10-M"
	}

	origins := viper.GetString("CORS_ALLOW_ORIGINS")
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, origin)
		}
	}

	return cfg, nil
}
