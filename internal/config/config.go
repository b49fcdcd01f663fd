package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Persistence — "bolt" (embedded file, default) or "redis"
	StoreBackend  string `mapstructure:"STORE_BACKEND"`
	BoltPath      string `mapstructure:"BOLT_PATH"`
	RedisURL      string `mapstructure:"REDIS_URL"`
	SaveQueueSize int    `mapstructure:"SAVE_QUEUE_SIZE"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("STORE_BACKEND", "bolt")
	viper.SetDefault("BOLT_PATH", "./compareshop.db")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("SAVE_QUEUE_SIZE", 64)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
