// Package config loads server settings from a YAML file and the
// environment. Every key has a default, so the server runs with no config
// file at all.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds everything the server needs to start.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Seed    SeedConfig    `mapstructure:"seed"`
}

type StorageConfig struct {
	Path string `mapstructure:"path"`
}

type ServerConfig struct {
	Transport string `mapstructure:"transport"`
	Addr      string `mapstructure:"addr"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type SeedConfig struct {
	File string `mapstructure:"file"`
}

// Load reads configuration from path, or from the default search locations
// when path is empty. Environment variables prefixed FUNDVERSE_ override
// file values (FUNDVERSE_SERVER_ADDR overrides server.addr).
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("fundverse")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.fundverse")
	}

	v.SetEnvPrefix("FUNDVERSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.path", "./data/fundverse.db")
	v.SetDefault("server.transport", "stdio")
	v.SetDefault("server.addr", ":8081")
	v.SetDefault("log.level", "info")
	v.SetDefault("seed.file", "")
}

func (c *Config) validate() error {
	if c.Storage.Path == "" {
		return errors.New("storage.path must not be empty")
	}
	switch c.Server.Transport {
	case "stdio", "http":
	default:
		return fmt.Errorf("server.transport must be stdio or http, got %q", c.Server.Transport)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// LogLevel parses the configured level. Load has already validated it.
func (c *Config) LogLevel() zerolog.Level {
	level, _ := zerolog.ParseLevel(c.Log.Level)
	return level
}
