package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config captures every knob cryptkeep reads, resolved once at process
// start. Components receive it explicitly; nothing consults the
// environment after Load returns.
//
// Configuration sources (in order of precedence):
//  1. CLI flags (applied by the command layer after Load)
//  2. Environment variables (CRYPTKEEP_*)
//  3. Configuration file (YAML)
//  4. Default values
type Config struct {
	// Store is the encrypted store directory (the provider's ciphertext).
	Store string `mapstructure:"store"`

	// Mountpoint is an optional fixed mount target. Empty means a fresh
	// ephemeral directory is created per session.
	Mountpoint string `mapstructure:"mountpoint"`

	// InitOptions is passed through opaquely to the provider's
	// initialize operation.
	InitOptions string `mapstructure:"init_options"`

	// MountOptions is passed through opaquely to the provider's attach
	// operation.
	MountOptions string `mapstructure:"mount_options"`

	// Command is the session command line executed inside the mount
	// target. Defaults to the user's shell.
	Command string `mapstructure:"command"`

	// Provider overrides the provider executable name.
	Provider string `mapstructure:"provider"`

	// LogLevel is the minimum diagnostic level (DEBUG, INFO, WARN, ERROR).
	LogLevel string `mapstructure:"log_level"`
}

// Load resolves the configuration from file, environment, and defaults.
// configPath selects an explicit config file; empty means
// ~/.cryptkeep.yaml, which may be absent.
func Load(configPath string) (Config, error) {
	v := viper.New()

	setDefaults(v)

	// CRYPTKEEP_STORE, CRYPTKEEP_MOUNT_OPTIONS, ...
	v.SetEnvPrefix("CRYPTKEEP")
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(".cryptkeep")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		// An absent default config file is fine; defaults and env carry
		// it. An explicitly named file must exist.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "unmarshaling config")
	}
	return cfg, nil
}

// setDefaults registers every key with its default so environment
// variables bind even when the config file is absent.
func setDefaults(v *viper.Viper) {
	v.SetDefault("store", defaultStore())
	v.SetDefault("mountpoint", "")
	v.SetDefault("init_options", "")
	v.SetDefault("mount_options", "")
	v.SetDefault("command", defaultCommand())
	v.SetDefault("provider", "")
	v.SetDefault("log_level", "INFO")
}

func defaultStore() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".cryptkeep", "store")
	}
	return filepath.Join(home, ".cryptkeep", "store")
}

// defaultCommand is the user's login shell, so a bare "cryptkeep" drops
// into an interactive shell inside the mount target.
func defaultCommand() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/bash"
}
