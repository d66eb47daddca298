package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultDBHost is the hosted database endpoint the service talks to.
	DefaultDBHost = "db.jysaghwdfkutombynqst.supabase.co"

	DefaultServerHost = "0.0.0.0"
	DefaultServerPort = "3001"
	DefaultDBPort     = "5432"
	DefaultDBUser     = "postgres"
	DefaultDBName     = "postgres"
	DefaultDBSSLMode  = "require"
	DefaultBucketName = "recipebox-images"
)

// Config holds all configuration for the application
type Config struct {
	Env Environment

	// Server configuration
	ServerHost string
	ServerPort string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis backs the login/signup rate limiter. Empty disables it.
	RedisURL string

	// Image storage
	S3Bucket        string
	AWSRegion       string
	S3PublicBaseURL string

	CORSAllowedOrigins []string
	LogLevel           string

	// AutoMigrate creates the tables at startup. Off for the hosted store.
	AutoMigrate bool
}

// LoadConfig reads an optional .env file, then environment variables and
// Docker secrets, and validates the result.
func LoadConfig() (*Config, error) {
	if err := loadDotEnv(os.Getenv("ENV_FILE")); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := &Config{
		Env:             GetEnvironment(),
		ServerHost:      lookup("SERVER_HOST", "server_host", DefaultServerHost),
		ServerPort:      lookup("SERVER_PORT", "server_port", DefaultServerPort),
		DBHost:          lookup("DB_HOST", "db_host", DefaultDBHost),
		DBPort:          lookup("DB_PORT", "db_port", DefaultDBPort),
		DBUser:          lookup("DB_USER", "db_user", DefaultDBUser),
		DBPassword:      lookup("DB_PASSWORD", "db_password", ""),
		DBName:          lookup("DB_NAME", "db_name", DefaultDBName),
		DBSSLMode:       lookup("DB_SSL_MODE", "db_ssl_mode", DefaultDBSSLMode),
		RedisURL:        lookup("REDIS_URL", "redis_url", ""),
		S3Bucket:        lookup("S3_BUCKET_NAME", "s3_bucket_name", DefaultBucketName),
		AWSRegion:       lookup("AWS_REGION", "aws_region", ""),
		S3PublicBaseURL: strings.TrimRight(os.Getenv("S3_PUBLIC_BASE_URL"), "/"),
		LogLevel:        lookup("LOG_LEVEL", "log_level", "info"),
	}
	cfg.CORSAllowedOrigins = splitList(os.Getenv("CORS_ALLOWED_ORIGINS"))
	cfg.AutoMigrate, _ = strconv.ParseBool(os.Getenv("AUTO_MIGRATE"))

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// DSN returns the postgres connection string for gorm.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// loadDotEnv loads KEY=VALUE pairs without overriding variables already set.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// lookup returns the env var, then the Docker secret, then the fallback.
func lookup(envKey, secret, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v
	}
	if v := readSecret(secret); v != "" {
		return v
	}
	return fallback
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	data, err := os.ReadFile(filepath.Join(secretsDir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
