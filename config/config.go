// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package config loads and stores the daemon's TOML configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml"
	"github.com/spf13/viper"
	"gitlab.com/tonomy/economy/pkg/errors"
)

const configFile = "economy.toml"

// Storage backends.
const (
	StorageMemory = "memory"
	StorageBadger = "badger"
)

type Config struct {
	RootDir string `toml:"-" mapstructure:"-"`

	Storage  Storage `toml:"storage" mapstructure:"storage"`
	API      API     `toml:"api" mapstructure:"api"`
	Cron     Cron    `toml:"cron" mapstructure:"cron"`
	Genesis  Genesis `toml:"genesis" mapstructure:"genesis"`
	Logging  Logging `toml:"logging" mapstructure:"logging"`
	TestMode bool    `toml:"test-mode" mapstructure:"test-mode"`
}

type Storage struct {
	Type string `toml:"type" mapstructure:"type" validate:"oneof=memory badger"`
	Path string `toml:"path" mapstructure:"path" validate:"required_if=Type badger"`
}

type API struct {
	ListenAddress string `toml:"listen-address" mapstructure:"listen-address" validate:"required"`
}

type Cron struct {
	// Schedule should fire once per cron period, e.g. "@every 1h".
	Schedule string `toml:"schedule" mapstructure:"schedule" validate:"required"`
}

// Genesis seeds the token ledger on first start. Supplies are asset strings,
// e.g. "1000000000.000000 TONO".
type Genesis struct {
	Issuer        string `toml:"issuer" mapstructure:"issuer" validate:"required"`
	MaxSupply     string `toml:"max-supply" mapstructure:"max-supply" validate:"required"`
	InitialSupply string `toml:"initial-supply" mapstructure:"initial-supply" validate:"required"`
}

type Logging struct {
	Level string `toml:"level" mapstructure:"level" validate:"required"`
}

// Default returns the production defaults rooted at dir.
func Default(dir string) *Config {
	return &Config{
		RootDir: dir,
		Storage: Storage{Type: StorageBadger, Path: "data"},
		API:     API{ListenAddress: "127.0.0.1:26660"},
		Cron:    Cron{Schedule: "@every 1h"},
		Genesis: Genesis{
			Issuer:        "gov.tmy",
			MaxSupply:     "50000000000.000000 TONO",
			InitialSupply: "1000000000.000000 TONO",
		},
		Logging: Logging{Level: "info"},
	}
}

// StoragePath resolves the storage path against the root directory.
func (c *Config) StoragePath() string {
	if filepath.IsAbs(c.Storage.Path) {
		return c.Storage.Path
	}
	return filepath.Join(c.RootDir, c.Storage.Path)
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.BadRequest.WithFormat("invalid configuration: %w", err)
	}
	return nil
}

// Load reads and validates the configuration in dir.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, configFile))
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.UnknownError.WithFormat("read config: %w", err)
	}

	c := new(Config)
	if err := v.Unmarshal(c); err != nil {
		return nil, errors.EncodingError.WithFormat("unmarshal config: %w", err)
	}
	c.RootDir = dir
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Store writes the configuration to its root directory.
func Store(c *Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(c.RootDir, 0o755); err != nil {
		return errors.UnknownError.WithFormat("create config dir: %w", err)
	}

	f, err := os.Create(filepath.Join(c.RootDir, configFile))
	if err != nil {
		return errors.UnknownError.WithFormat("create config: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return errors.EncodingError.WithFormat("encode config: %w", err)
	}
	return nil
}
