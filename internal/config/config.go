package config

import (
	"fmt"
	"log"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"github.com/Skotchmaster/restaurant_ordering/pkg/config"
	"github.com/Skotchmaster/restaurant_ordering/pkg/db"
)

const (
	TokenModeLegacy = "legacy"
	TokenModeJWT    = "jwt"
)

type Config struct {
	ServiceName string
	ServerPort  string
	APIPrefix   string
	LogLevel    string

	DBDriver    string
	DatabaseURL string
	Location    *time.Location

	DemoBypass bool
	TokenMode  string
	JWTSecret  []byte
	JWTTTL     time.Duration

	KafkaBrokers []string

	ESURL      string
	ESUser     string
	ESPassword string
	ESIndex    string

	SeedDemo bool
}

// Parse reads the process environment without validating it.
func Parse() (Config, error) {
	cfg := Config{
		ServiceName:  config.EnvDefault("SERVICE_NAME", "restaurant-api"),
		ServerPort:   config.EnvDefault("SERVER_PORT", ":8080"),
		APIPrefix:    config.EnvDefault("API_PREFIX", "/api"),
		LogLevel:     config.EnvDefault("LOG_LEVEL", "info"),
		DBDriver:     config.EnvDefault("DB_DRIVER", db.DriverPostgres),
		DatabaseURL:  config.EnvDefault("DATABASE_URL", ""),
		DemoBypass:   config.EnvBoolDefault("AUTH_DEMO_BYPASS", false),
		TokenMode:    strings.ToLower(config.EnvDefault("AUTH_TOKEN_MODE", TokenModeLegacy)),
		JWTSecret:    []byte(config.EnvDefault("JWT_SECRET", "")),
		JWTTTL:       time.Duration(config.EnvIntDefault("JWT_TTL_MINUTES", 720)) * time.Minute,
		KafkaBrokers: config.CSV(config.EnvDefault("KAFKA_BROKERS", "")),
		ESURL:        config.EnvDefault("ES_URL", ""),
		ESUser:       config.EnvDefault("ES_USER", ""),
		ESPassword:   config.EnvDefault("ES_PASSWORD", ""),
		ESIndex:      config.EnvDefault("ES_INDEX", "menu_items"),
		SeedDemo:     config.EnvBoolDefault("SEED_DEMO", false),
	}

	loc, err := time.LoadLocation(config.EnvDefault("TIMEZONE", "UTC"))
	if err != nil {
		return Config{}, fmt.Errorf("TIMEZONE: %w", err)
	}
	cfg.Location = loc

	switch cfg.TokenMode {
	case TokenModeLegacy, TokenModeJWT:
	default:
		return Config{}, fmt.Errorf("AUTH_TOKEN_MODE: unknown mode %q", cfg.TokenMode)
	}

	if !strings.HasPrefix(cfg.APIPrefix, "/") {
		cfg.APIPrefix = "/" + cfg.APIPrefix
	}
	cfg.APIPrefix = strings.TrimRight(cfg.APIPrefix, "/")

	return cfg, nil
}

func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	cfg, err := Parse()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	if cfg.TokenMode == TokenModeJWT {
		config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")
	}

	return cfg
}
