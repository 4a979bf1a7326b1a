// Package config loads service configuration from an optional env file and
// the process environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application, storage, messaging, security and mail settings.
type Config struct {
	AppHost  string `env:"APP_HOST" envDefault:"localhost"`
	AppPort  string `env:"APP_PORT" envDefault:"8080"`
	LogLevel string `env:"APP_LOG_LEVEL" envDefault:"info"`

	PostgresHost         string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort         int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser         string `env:"POSTGRES_USER" envDefault:"user"`
	PostgresPassword     string `env:"POSTGRES_PASSWORD" envDefault:"password"`
	PostgresDB           string `env:"POSTGRES_DB" envDefault:"gamegauge"`
	PostgresMaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"16"`
	PostgresMaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"8"`

	RedisHost         string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort         int    `env:"REDIS_PORT" envDefault:"6379"`
	RedisDB           int    `env:"REDIS_DB" envDefault:"0"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisPoolSize     int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisMinIdleConns int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`

	// Empty KafkaBrokers disables event publishing.
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"gamegauge.activity"`

	JWTSecretKey  string        `env:"JWT_SECRET_KEY,required,notEmpty"`
	JWTExpiration time.Duration `env:"JWT_EXPIRATION" envDefault:"24h"`
	BcryptCost    int           `env:"BCRYPT_COST" envDefault:"10"`

	RecaptchaSecretKey      string  `env:"RECAPTCHA_SECRET_KEY"`
	RecaptchaVerifyURL      string  `env:"RECAPTCHA_VERIFY_URL" envDefault:"https://www.google.com/recaptcha/api/siteverify"`
	RecaptchaScoreThreshold float64 `env:"RECAPTCHA_SCORE_THRESHOLD" envDefault:"0.5"`

	SendGridAPIKey string `env:"SENDGRID_API_KEY"`
	EmailFrom      string `env:"EMAIL_FROM" envDefault:"no-reply@gamegauge.fr"`
	EmailFromName  string `env:"EMAIL_FROM_NAME" envDefault:"GameGauge"`
	FrontendURL    string `env:"FRONTEND_URL" envDefault:"https://gamegauge.fr"`

	ResetTokenTTL    time.Duration `env:"RESET_TOKEN_TTL" envDefault:"30m"`
	ResetThrottleTTL time.Duration `env:"RESET_THROTTLE_TTL" envDefault:"1m"`
}

// Load reads the env file at path (a missing file is not an error) and
// parses the environment into a Config.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", cfg.BcryptCost)
	}
	return &cfg, nil
}

// PostgresDSN builds the pgx connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

// RedisAddr returns host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// HTTPAddr returns host:port the HTTP server listens on.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}
