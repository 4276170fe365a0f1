package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server  Server  `mapstructure:"server"`
	Storage Storage `mapstructure:"storage"`
	Trading Trading `mapstructure:"trading"`
	Logger  Logger  `mapstructure:"logger"`
}

// Server holds the configuration for the web server.
type Server struct {
	Port           int     `mapstructure:"port"`
	RateLimit      float64 `mapstructure:"rate_limit"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
}

// Storage holds the configuration for the persisted key-value store.
type Storage struct {
	// Backend is either "sqlite" or "memory".
	Backend string `mapstructure:"backend"`
	DSN     string `mapstructure:"dsn"`
}

// Trading holds the configuration for the calculator logic.
type Trading struct {
	RecommendationLimit int `mapstructure:"recommendation_limit"`
}

// Logger holds the configuration for the logger.
type Logger struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yml")

	// Allow environment variables to override config file
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.rate_limit", 20)      // requests per second
	viper.SetDefault("server.rate_limit_burst", 5) // burst size
	viper.SetDefault("storage.backend", "sqlite")
	viper.SetDefault("storage.dsn", "trade-tide.db")
	viper.SetDefault("trading.recommendation_limit", 3)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
