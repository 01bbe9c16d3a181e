// Package config loads runtime settings from an app.env file with
// environment-variable overrides.
package config

import "github.com/spf13/viper"

// Config holds all runtime settings for the API server.
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	GinMode       string `mapstructure:"GIN_MODE"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
}

// LoadConfig reads app.env from path; environment variables take
// precedence over file values.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("GIN_MODE", "release")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil // defaults and environment only
	}

	err = viper.Unmarshal(&config)

	return
}
