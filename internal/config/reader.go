package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Load reads configuration from a .env file in the working directory and
// from the environment. Every key has a default, so a bare environment
// still yields a usable config pointing at a local proxy.
func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.AutomaticEnv()

	viper.SetDefault("PROXY_BASE_URL", "http://127.0.0.1:17246")
	viper.SetDefault("PROJECT_URN", "")
	viper.SetDefault("REQUEST_TIMEOUT", 10*time.Second)
	viper.SetDefault("LOG_FILE", "")
	viper.SetDefault("SILENT", false)

	if err := viper.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return &Config{
		ProxyBaseURL:   loadString("PROXY_BASE_URL"),
		ProjectURN:     loadString("PROJECT_URN"),
		RequestTimeout: loadDuration("REQUEST_TIMEOUT"),
		LogFile:        loadString("LOG_FILE"),
		Silent:         loadBool("SILENT"),
	}, nil
}
