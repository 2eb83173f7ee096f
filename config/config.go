// Package config loads front-end settings from an optional YAML file and the
// environment.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the settings shared by the CLI and the HTTP server.
type Config struct {
	Log struct {
		Level  string `yaml:"level" env:"ULID_LOG_LEVEL" env-default:"info" validate:"oneof=trace debug info warn error fatal panic disabled"`
		Format string `yaml:"format" env:"ULID_LOG_FORMAT" env-default:"console" validate:"oneof=console json"`
	} `yaml:"log"`

	Trace        bool   `yaml:"trace" env:"ULID_TRACE" env-description:"export spans and metrics"`
	OTLPEndpoint string `yaml:"otlp_endpoint" env:"ULID_OTLP_ENDPOINT" env-description:"OTLP gRPC collector; empty writes to stderr" validate:"omitempty,hostname_port"`

	HTTP struct {
		Addr            string        `yaml:"addr" env:"ULID_HTTP_ADDR" env-default:":8080" validate:"required"`
		ReadTimeout     time.Duration `yaml:"read_timeout" env:"ULID_HTTP_READ_TIMEOUT" env-default:"5s" validate:"gt=0"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"ULID_HTTP_SHUTDOWN_TIMEOUT" env-default:"10s" validate:"gt=0"`
	} `yaml:"http"`

	Batch struct {
		Default int `yaml:"default" env:"ULID_BATCH_DEFAULT" env-default:"1" validate:"gte=1,ltefield=Max"`
		Max     int `yaml:"max" env:"ULID_BATCH_MAX" env-default:"1000" validate:"gte=1"`
	} `yaml:"batch"`
}

// Load reads path when it is not empty, then overlays the environment and
// validates the result.
func Load(path string) (*Config, error) {
	var cfg Config
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg against its validate tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Usage returns the environment variables understood by Load.
func Usage() (string, error) {
	return cleanenv.GetDescription(&Config{}, nil)
}
