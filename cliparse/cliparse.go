package cliparse

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	StoreTimeout time.Duration
	RateLimit    float64 // commands per second per requester, 0 disables
	RateBurst    int
	LogLevel     slog.Level
}

// ParseFlags validates flags and applies env and default values
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var logLevel string

	fs := flag.NewFlagSet("roompoll", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Tuning
	fs.DurationVar(&cfg.StoreTimeout, "store-timeout", 0, "Timeout for each storage call")
	fs.Float64Var(&cfg.RateLimit, "rate", -1, "Commands per second per requester (0 disables)")
	fs.IntVar(&cfg.RateBurst, "burst", 0, "Rate limiter burst size")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Values from .env never override the real environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, errors.New("invalid .env file: " + err.Error())
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == DatabasePostgres {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "file:roompoll.db"
	}

	if cfg.StoreTimeout == 0 {
		if s := os.Getenv("STORE_TIMEOUT"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, errors.New("invalid STORE_TIMEOUT env variable")
			}
			cfg.StoreTimeout = d
		} else {
			cfg.StoreTimeout = 5 * time.Second
		}
	}
	if cfg.StoreTimeout < 0 {
		return Config{}, errors.New("store timeout must be positive")
	}

	if cfg.RateLimit < 0 {
		if s := os.Getenv("RATE_LIMIT"); s != "" {
			r, err := strconv.ParseFloat(s, 64)
			if err != nil || r < 0 {
				return Config{}, errors.New("invalid RATE_LIMIT env variable")
			}
			cfg.RateLimit = r
		} else {
			cfg.RateLimit = 5
		}
	}
	if cfg.RateBurst == 0 {
		if s := os.Getenv("RATE_BURST"); s != "" {
			b, err := strconv.Atoi(s)
			if err != nil || b < 1 {
				return Config{}, errors.New("invalid RATE_BURST env variable")
			}
			cfg.RateBurst = b
		} else {
			cfg.RateBurst = 10
		}
	}

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	if logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(logLevel))); err != nil {
			return Config{}, errors.New("invalid log level: " + logLevel)
		}
	}

	return cfg, nil
}
