package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Values are read by viper from a config file or environment variables.
type Config struct {
	BadgerDBPath string `mapstructure:"BADGERDB_PATH"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`
}

// LoadConfig reads configuration from file or environment variables.
// A missing config file is fine; everything has a usable default.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if config.BadgerDBPath == "" {
		config.BadgerDBPath = "./watchdeck_data"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}

	return config, nil
}
