package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env      string `env:"ENV"       envDefault:"local" validate:"required,oneof=local staging production"`
	Port     string `env:"PORT"      envDefault:"8080"  validate:"required"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"  validate:"oneof=debug info warn error"`

	DatabaseURL string `env:"DATABASE_URL,required" validate:"required"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"false"`
	MetricsPort string `env:"METRICS_PORT" envDefault:"9090"`

	JWTSecret       string        `env:"JWT_SECRET,required" validate:"required,min=32"`
	JWTIssuer       string        `env:"JWT_ISSUER"        envDefault:"communication-service" validate:"required"`
	JWTAudience     string        `env:"JWT_AUDIENCE"      envDefault:"communication-api"     validate:"required"`
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL"  envDefault:"1h"                    validate:"gt=0"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"720h"                  validate:"gtfield=AccessTokenTTL"`

	MailEnabled  bool   `env:"MAIL_ENABLED"  envDefault:"false"`
	MailProvider string `env:"MAIL_PROVIDER" envDefault:"smtp" validate:"oneof=smtp resend log"`
	MailFrom     string `env:"MAIL_FROM"     validate:"omitempty,email"`

	SMTPHost     string `env:"SMTP_HOST"     validate:"required_if=MailEnabled true MailProvider smtp"`
	SMTPPort     int    `env:"SMTP_PORT"     envDefault:"587" validate:"min=1,max=65535"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`

	ResendAPIKey string `env:"RESEND_API_KEY" validate:"required_if=MailEnabled true MailProvider resend"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SlogLevel maps LOG_LEVEL onto a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SenderAddress is the From address used for outgoing mail. It falls back to the
// SMTP user, which is what most relays require anyway.
func (c *Config) SenderAddress() string {
	if c.MailFrom != "" {
		return c.MailFrom
	}
	return c.SMTPUser
}

// LogValue keeps secrets out of structured logs.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("env", c.Env),
		slog.String("port", c.Port),
		slog.String("metrics_port", c.MetricsPort),
		slog.Bool("auto_migrate", c.AutoMigrate),
		slog.String("jwt_issuer", c.JWTIssuer),
		slog.String("jwt_audience", c.JWTAudience),
		slog.Duration("access_token_ttl", c.AccessTokenTTL),
		slog.Duration("refresh_token_ttl", c.RefreshTokenTTL),
		slog.Bool("mail_enabled", c.MailEnabled),
		slog.String("mail_provider", c.MailProvider),
		slog.String("smtp_host", c.SMTPHost),
		slog.Int("smtp_port", c.SMTPPort),
	)
}
