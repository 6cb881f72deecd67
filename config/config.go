package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	ServiceCatalog = "catalog"
	ServiceCart    = "cart"
)

// Config holds everything one service needs at startup. Keys are the
// lowercased environment variable names.
type Config struct {
	Service            string        `koanf:"-" validate:"required,oneof=catalog cart"`
	Env                string        `koanf:"app_env" validate:"required,oneof=development production test"`
	LogLevel           string        `koanf:"log_level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	Port               string        `koanf:"port" validate:"required,numeric"`
	MongoURL           string        `koanf:"mongo_url" validate:"required,startswith=mongodb"`
	DBName             string        `koanf:"db_name" validate:"required"`
	Collection         string        `koanf:"collection" validate:"required"`
	RequestTimeout     time.Duration `koanf:"request_timeout" validate:"gte=0"`
	ConnectTimeout     time.Duration `koanf:"connect_timeout" validate:"gt=0"`
	ShutdownTimeout    time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins" validate:"required,min=1,dive,eq=*|startswith=http://|startswith=https://"`
	StrictValidation   bool          `koanf:"cart_strict_validation"`
}

// LoadEnv loads a .env file from the working directory if one exists.
func LoadEnv() {
	_ = godotenv.Load()
}

// Defaults returns the fallback configuration for a service.
func Defaults(service string) *Config {
	collection := "products"
	if service == ServiceCart {
		collection = "cart"
	}

	return &Config{
		Service:            service,
		Env:                "development",
		LogLevel:           "info",
		Port:               "3000",
		MongoURL:           "mongodb://localhost:27017",
		DBName:             "shopping",
		Collection:         collection,
		RequestTimeout:     5 * time.Second,
		ConnectTimeout:     10 * time.Second,
		ShutdownTimeout:    10 * time.Second,
		CORSAllowedOrigins: []string{"*"},
	}
}

// Load reads the process environment on top of Defaults and validates the
// result. Variables set to the empty string keep their default.
func Load(service string) (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		key = strings.ToLower(key)
		if key == "cors_allowed_origins" {
			return key, splitList(value)
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}

	cfg := Defaults(service)
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Service = service

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
