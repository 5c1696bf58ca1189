package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

func loadString(envName string) string {
	validate(envName)

	return viper.GetString(envName)
}

func loadBool(envName string) bool {
	validate(envName)

	return viper.GetBool(envName)
}

func loadDuration(envName string) time.Duration {
	validate(envName)

	return viper.GetDuration(envName)
}

func validate(envName string) {
	exists := viper.IsSet(envName)
	if !exists {
		panic(fmt.Sprintf("configuration key [%s] does not exist", envName))
	}
}
