package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultNetwork  = "BTC - Bitcoin"
	defaultLanguage = "english"
	defaultWords    = 15
	defaultLogLevel = "info"
	defaultCount    = 20
)

// Config holds the settings shared by all commands. Values come from flags,
// then HDKEYS_* environment variables, then the config file, then defaults.
type Config struct {
	Network  string       `mapstructure:"network"`
	Language string       `mapstructure:"language"`
	Words    int          `mapstructure:"words"`
	LogLevel string       `mapstructure:"log_level"`
	Derive   DeriveConfig `mapstructure:"derive"`
}

// DeriveConfig holds defaults of the derive command.
type DeriveConfig struct {
	Count  int    `mapstructure:"count"`
	Segwit string `mapstructure:"segwit"`
	Client string `mapstructure:"client"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("network", defaultNetwork)
	v.SetDefault("language", defaultLanguage)
	v.SetDefault("words", defaultWords)
	v.SetDefault("log_level", defaultLogLevel)

	v.SetDefault("derive.count", defaultCount)
	v.SetDefault("derive.segwit", "none")
	v.SetDefault("derive.client", "")
}

// loadConfig reads path, or hdkeys.yaml from the working directory and the
// user config directory when path is empty. A missing default file is not
// an error.
func loadConfig(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("HDKEYS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range map[string]string{
			"network":   "network",
			"language":  "language",
			"words":     "words",
			"log_level": "log-level",
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("could not bind flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("hdkeys")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "hdkeys"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("could not read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("could not decode config: %w", err)
	}
	return c, nil
}
