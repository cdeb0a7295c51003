package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
)

type Config struct {
	Primary     Primary           `koanf:"primary"`
	Server      ServerConfig      `koanf:"server"`
	App         AppConfig         `koanf:"app"`
	Gateway     GatewayConfig     `koanf:"gateway"`
	Attribution AttributionConfig `koanf:"attribution"`
	Store       StoreConfig       `koanf:"store"`
	Database    DatabaseConfig    `koanf:"database"`
	Webhook     WebhookConfig     `koanf:"webhook"`
	Worker      WorkerConfig      `koanf:"worker"`
	Logger      LoggerConfig      `koanf:"logger"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

// AppConfig holds the public base URL of this service. The gateway posts
// payment webhooks back to BaseURL + the webhook route.
type AppConfig struct {
	BaseURL string `koanf:"base_url" validate:"required"`
}

type GatewayConfig struct {
	BaseURL     string        `koanf:"base_url" validate:"required"`
	PublicKey   string        `koanf:"public_key"`
	SecretKey   string        `koanf:"secret_key"`
	ConnTimeout time.Duration `koanf:"conn_timeout" validate:"required"`
}

type AttributionConfig struct {
	URL         string        `koanf:"url" validate:"required"`
	APIKey      string        `koanf:"api_key"`
	ConnTimeout time.Duration `koanf:"conn_timeout" validate:"required"`
}

// StoreConfig selects the tracking-parameter store backend. The memory
// driver is single-process only; deployments with more than one instance
// must use postgres so a webhook can land on any replica.
type StoreConfig struct {
	Driver string        `koanf:"driver" validate:"required,oneof=memory postgres"`
	TTL    time.Duration `koanf:"ttl" validate:"required"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	User            string        `koanf:"user"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name"`
	SSLMode         string        `koanf:"ssl_mode"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
}

// WebhookConfig carries the optional shared token for inbound gateway
// webhooks. When Secret is empty the webhook endpoint accepts any sender
// and only logs the source headers.
type WebhookConfig struct {
	Secret string `koanf:"secret"`
}

type WorkerConfig struct {
	Interval time.Duration `koanf:"interval" validate:"required"`
}

type LoggerConfig struct {
	Level string `koanf:"level"`
}

// NewLogger builds the process-wide slog logger from the configured level.
func (c LoggerConfig) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	err := k.Load(env.Provider("BRIDGE_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "BRIDGE_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := defaultConfig()

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

func defaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Gateway: GatewayConfig{
			ConnTimeout: 30 * time.Second,
		},
		Attribution: AttributionConfig{
			ConnTimeout: 10 * time.Second,
		},
		Store: StoreConfig{
			Driver: "memory",
			TTL:    72 * time.Hour,
		},
		Worker: WorkerConfig{
			Interval: 15 * time.Minute,
		},
		Logger: LoggerConfig{Level: "info"},
	}
}
