package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config struct to hold the configuration settings
type Config struct {
	Postgres PostgresConfig `yaml:"postgres"`
	NATS     NATSConfig     `yaml:"nats"`
	HTTP     HTTPConfig     `yaml:"http"`
	JWT      JWTConfig      `yaml:"jwt"`
	Auth     AuthConfig     `yaml:"auth"`
	Contest  ContestConfig  `yaml:"contest"`
	Uploads  UploadsConfig  `yaml:"uploads"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// NATSConfig holds NATS configuration. An empty URL selects the in-process bus.
type NATSConfig struct {
	URL string `yaml:"url"`
}

// HTTPConfig holds the HTTP listener configuration.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// JWTConfig holds JWT configuration.
type JWTConfig struct {
	Secret     string        `yaml:"secret"`
	DefaultTTL time.Duration `yaml:"default_ttl"`
}

// AuthConfig holds role bootstrap settings. Accounts signing up with one of
// the listed emails are created as admins.
type AuthConfig struct {
	AdminEmails []string `yaml:"admin_emails"`
}

// ContestConfig holds the rating bounds and the countdown tick cadence.
type ContestConfig struct {
	MinRating    int           `yaml:"min_rating"`
	MaxRating    int           `yaml:"max_rating"`
	TickInterval time.Duration `yaml:"tick_interval"`
}

// UploadsConfig holds image upload limits and the serving prefix.
type UploadsConfig struct {
	Dir          string `yaml:"dir"`
	PublicBase   string `yaml:"public_base"`
	MaxSizeBytes int64  `yaml:"max_size_bytes"`
}

// LoadConfig loads the configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Try reading configuration from the file first
	data, err := os.ReadFile(filename)
	if err != nil {
		// If the file is not found, try loading from environment variables
		return loadConfigFromEnv()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// loadConfigFromEnv loads configuration from environment variables.
func loadConfigFromEnv() (*Config, error) {
	cfg := &Config{
		Postgres: PostgresConfig{
			DSN: os.Getenv("DATABASE_URL"),
		},
		NATS: NATSConfig{
			URL: os.Getenv("NATS_URL"),
		},
		HTTP: HTTPConfig{
			Addr: os.Getenv("HTTP_ADDR"),
		},
		JWT: JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
		},
		Uploads: UploadsConfig{
			Dir:        os.Getenv("UPLOADS_DIR"),
			PublicBase: os.Getenv("UPLOADS_PUBLIC_BASE"),
		},
	}

	if ttl := os.Getenv("JWT_DEFAULT_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_DEFAULT_TTL: %w", err)
		}
		cfg.JWT.DefaultTTL = d
	}

	if admins := os.Getenv("ADMIN_EMAILS"); admins != "" {
		cfg.Auth.AdminEmails = strings.Split(admins, ",")
	}

	if maxRating := os.Getenv("CONTEST_MAX_RATING"); maxRating != "" {
		n, err := strconv.Atoi(maxRating)
		if err != nil {
			return nil, fmt.Errorf("invalid CONTEST_MAX_RATING: %w", err)
		}
		cfg.Contest.MaxRating = n
	}

	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("missing required environment variable: DATABASE_URL")
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.JWT.DefaultTTL == 0 {
		cfg.JWT.DefaultTTL = 24 * time.Hour
	}
	if cfg.Contest.MinRating == 0 {
		cfg.Contest.MinRating = 1
	}
	if cfg.Contest.MaxRating == 0 {
		cfg.Contest.MaxRating = 5
	}
	if cfg.Contest.TickInterval == 0 {
		cfg.Contest.TickInterval = time.Second
	}
	if cfg.Uploads.Dir == "" {
		cfg.Uploads.Dir = "uploads"
	}
	if cfg.Uploads.PublicBase == "" {
		cfg.Uploads.PublicBase = "/uploads"
	}
	if cfg.Uploads.MaxSizeBytes == 0 {
		cfg.Uploads.MaxSizeBytes = 5 * 1024 * 1024
	}
}
