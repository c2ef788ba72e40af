// Package config loads runtime configuration with viper: environment
// variables first, optionally overlaid by a config.yaml next to the binary.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Addr        string `mapstructure:"addr"`
	Env         string `mapstructure:"env"`
	DatabaseURL string `mapstructure:"database_url"`
	RedisAddr   string `mapstructure:"redis_addr"`
	JWTSecret   string `mapstructure:"jwt_secret"`
	CORSOrigins string `mapstructure:"cors_origins"`
	SMTP        SMTP   `mapstructure:"smtp"`
}

type SMTP struct {
	Server    string `mapstructure:"server"`
	Port      string `mapstructure:"port"`
	User      string `mapstructure:"user"`
	Password  string `mapstructure:"password"`
	AlertFrom string `mapstructure:"alert_from"`
	AlertTo   string `mapstructure:"alert_to"`
}

// Load reads configuration from the environment (RI_ prefix) and an optional
// config.yaml in the working directory. DATABASE_URL is required.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("env", "development")
	v.SetDefault("redis_addr", "")
	v.SetDefault("cors_origins", "http://localhost:3000")

	v.SetEnvPrefix("RI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Unprefixed fallbacks for conventional variables.
	_ = v.BindEnv("database_url", "RI_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("redis_addr", "RI_REDIS_ADDR", "REDIS_ADDR")
	_ = v.BindEnv("jwt_secret", "RI_JWT_SECRET", "JWT_SECRET")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is not set")
	}
	return cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c Config) IsProduction() bool { return c.Env == "production" }

// Origins splits the configured comma-separated CORS origin list.
func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
