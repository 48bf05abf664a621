package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Host               string `validate:"required"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string `validate:"required"`
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port int `default:"8080"`
}

type Auth struct {
	SecretKey string `validate:"required"`
}

type Listing struct {
	DefaultLimit int `default:"6"`
	MaxLimit     int `default:"100"`
	PopularLimit int `default:"5"`
}

type Reviews struct {
	DefaultLimit int `default:"10"`
	MaxLimit     int `default:"100"`
}

type Config struct {
	DB      DB
	Server  Server
	Auth    Auth
	Listing Listing
	Reviews Reviews
}

const envPrefix = "TABLESCOUT" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if !strings.Contains(err.Error(), "file not found") {
			return nil, err
		}

		logger.Warn("Could not find config file", zap.String("file", configFileName))

		err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
		if err != nil {
			return nil, err
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	for name, limit := range map[string]int{
		"Listing.DefaultLimit": c.Listing.DefaultLimit,
		"Listing.MaxLimit":     c.Listing.MaxLimit,
		"Listing.PopularLimit": c.Listing.PopularLimit,
		"Reviews.DefaultLimit": c.Reviews.DefaultLimit,
		"Reviews.MaxLimit":     c.Reviews.MaxLimit,
	} {
		if limit < 1 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrConfiguration, name, limit)
		}
	}

	if c.Listing.DefaultLimit > c.Listing.MaxLimit || c.Reviews.DefaultLimit > c.Reviews.MaxLimit {
		return fmt.Errorf("%w: default page size exceeds the maximum", ErrConfiguration)
	}

	return nil
}
