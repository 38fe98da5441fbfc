package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Database DBConfig     `mapstructure:"database"`
	Rabbit   RabbitConfig `mapstructure:"rabbitmq"`
	LogLevel string       `mapstructure:"log_level"`
}

// DBConfig carries credentials only: the database name and port come
// from the positional command-line arguments.
type DBConfig struct {
	Host string `mapstructure:"host"`
	User string `mapstructure:"user"`
	Pass string `mapstructure:"password"`
}

type RabbitConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	User string `mapstructure:"user"`
	Pass string `mapstructure:"password"`
}

// Enabled reports whether event publishing is configured at all.
func (r RabbitConfig) Enabled() bool { return r.Host != "" }

// Load reads config.yaml and applies PIZZASTORE_ environment overrides.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")

	v.SetEnvPrefix("PIZZASTORE")
	v.AutomaticEnv()

	v.SetDefault("database.host", "localhost")
	v.SetDefault("rabbitmq.port", 5672)
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine: defaults plus env cover the local case.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
