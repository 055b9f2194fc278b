// Package config centralizes process configuration. Values are resolved by
// viper from the environment (a local .env is honored), with command-line
// flags taking precedence when bound.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyClickUpAPIURL, "https://api.clickup.com/api/v2")
	viper.SetDefault(KeyClickUpTimeout, "30s")
	viper.SetDefault(KeyLogLevel, "info")
}

func ClickUpAPIKey() string         { return viper.GetString(KeyClickUpAPIKey) }
func ClickUpAPIURL() string         { return viper.GetString(KeyClickUpAPIURL) }
func ClickUpTimeout() time.Duration { return viper.GetDuration(KeyClickUpTimeout) }
func LogLevel() string              { return viper.GetString(KeyLogLevel) }
func MCPHTTPToken() string          { return viper.GetString(KeyMCPHTTPToken) }
