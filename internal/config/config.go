package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr string `mapstructure:"http_addr"`
	LogLevel string `mapstructure:"log_level" validate:"oneof=trace debug info warn error"`

	Database DatabaseConfig `mapstructure:",squash"`
	AMQPURL  string         `mapstructure:"amqp_url" validate:"required"`
	// Empty selects the in-process store, which only suits a single instance.
	RedisURL string `mapstructure:"redis_url"`

	Google GoogleConfig `mapstructure:",squash"`

	InternalCc    string `mapstructure:"mail_internal_cc" validate:"omitempty,email"`
	AuthJWTSecret string `mapstructure:"auth_jwt_secret"`

	TokenExpiryMargin    time.Duration `mapstructure:"token_expiry_margin" validate:"gte=0"`
	ConnectionCacheTTL   time.Duration `mapstructure:"connection_cache_ttl" validate:"gt=0"`
	ConnectionAttemptTTL time.Duration `mapstructure:"connection_attempt_ttl" validate:"gt=0"`

	SendWorkers       int `mapstructure:"send_workers" validate:"gt=0"`
	SendQueueSize     int `mapstructure:"send_queue_size" validate:"gte=0"`
	SendRatePerMinute int `mapstructure:"send_rate_per_minute" validate:"gt=0"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"db_host" validate:"required"`
	Port     string `mapstructure:"db_port" validate:"required"`
	User     string `mapstructure:"db_user" validate:"required"`
	Password string `mapstructure:"db_password"`
	Name     string `mapstructure:"db_name" validate:"required"`
}

type GoogleConfig struct {
	ClientID     string `mapstructure:"google_client_id" validate:"required"`
	ClientSecret string `mapstructure:"google_client_secret" validate:"required"`
	RedirectURL  string `mapstructure:"google_redirect_url" validate:"required,url"`
}

var keys = []string{
	"http_addr", "log_level",
	"db_host", "db_port", "db_user", "db_password", "db_name",
	"amqp_url", "redis_url",
	"google_client_id", "google_client_secret", "google_redirect_url",
	"mail_internal_cc", "auth_jwt_secret",
	"token_expiry_margin", "connection_cache_ttl", "connection_attempt_ttl",
	"send_workers", "send_queue_size", "send_rate_per_minute",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("db_port", "5432")
	v.SetDefault("token_expiry_margin", time.Minute)
	v.SetDefault("connection_cache_ttl", 45*time.Second)
	v.SetDefault("connection_attempt_ttl", 5*time.Minute)
	v.SetDefault("send_workers", 4)
	v.SetDefault("send_queue_size", 100)
	v.SetDefault("send_rate_per_minute", 30)
}

// Load reads configuration from the environment, after loading an optional
// .env file and an optional config.yaml from the working directory.
// Environment values win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Debug("Loaded .env file")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.WithField("file", v.ConfigFileUsed()).Debug("Loaded config file")
	}
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Unmarshal only sees env values for bound keys.
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Level parses LogLevel, falling back to info.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
