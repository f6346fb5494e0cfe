package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	Conn   string `mapstructure:"conn"`
}

type AuthConfig struct {
	// Secret signs bearer tokens. It has no default: startup fails
	// without one.
	Secret          string `mapstructure:"secret"`
	TokenTTLMinutes int    `mapstructure:"token_ttl_minutes"`
	BcryptCost      int    `mapstructure:"bcrypt_cost"`
	// Mode is "strict" or "permissive"; see the identity middleware.
	Mode string `mapstructure:"mode"`
}

func Load(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("database.driver", "sqlite3")
	v.SetDefault("database.conn", "./cleverpad.db")
	v.SetDefault("auth.token_ttl_minutes", 30)
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("auth.mode", "permissive")

	// Enable environment variable support
	v.AutomaticEnv()

	// Read the config file when one exists; env-only deployments are fine
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Environment overrides
	if secret := v.GetString("SECRET_KEY"); secret != "" {
		config.Auth.Secret = secret
	}
	if dbURL := v.GetString("DATABASE_URL"); dbURL != "" {
		config.Database.Driver = "postgres"
		config.Database.Conn = dbURL
	}

	if config.Auth.Secret == "" {
		return nil, errors.New("signing secret is not set (auth.secret or SECRET_KEY)")
	}
	if config.Auth.Mode != "strict" && config.Auth.Mode != "permissive" {
		return nil, fmt.Errorf("invalid auth mode %q", config.Auth.Mode)
	}

	return &config, nil
}
