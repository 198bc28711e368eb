package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	GinMode           string
	HTTPAddr          string
	DBDriver          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	RedisHost         string
	RedisPort         string
	RedisPassword     string
	SessionSecret     string
	JWTSecret         string
	JWTTTL            time.Duration
	RatingLock        string
	RatingLockTTL     time.Duration
	LogLevel          string
	BroadcastCacheTTL time.Duration
}

// RedisAddr returns host:port for the configured Redis instance.
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// Load reads configuration from an optional .env file, an optional config.yaml
// and SKILLSWAP_* environment variables, in increasing order of precedence.
func Load(configFile string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("SKILLSWAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	cfg := &Config{
		GinMode:           v.GetString("gin_mode"),
		HTTPAddr:          v.GetString("http_addr"),
		DBDriver:          v.GetString("db_driver"),
		DBHost:            v.GetString("db_host"),
		DBPort:            v.GetString("db_port"),
		DBUser:            v.GetString("db_user"),
		DBPassword:        v.GetString("db_password"),
		DBName:            v.GetString("db_name"),
		RedisHost:         v.GetString("redis_host"),
		RedisPort:         v.GetString("redis_port"),
		RedisPassword:     v.GetString("redis_password"),
		SessionSecret:     v.GetString("session_secret"),
		JWTSecret:         v.GetString("jwt_secret"),
		JWTTTL:            v.GetDuration("jwt_ttl"),
		RatingLock:        v.GetString("rating_lock"),
		RatingLockTTL:     v.GetDuration("rating_lock_ttl"),
		LogLevel:          v.GetString("log_level"),
		BroadcastCacheTTL: v.GetDuration("broadcast_cache_ttl"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("db_driver", "mysql")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "3306")
	v.SetDefault("db_user", "skillswap")
	v.SetDefault("db_password", "skillswap")
	v.SetDefault("db_name", "skillswap")
	v.SetDefault("redis_host", "localhost")
	v.SetDefault("redis_port", "6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("session_secret", "default-secret-key-change-me")
	v.SetDefault("jwt_secret", "default-jwt-secret-change-me")
	v.SetDefault("jwt_ttl", "168h")
	v.SetDefault("rating_lock", "local")
	v.SetDefault("rating_lock_ttl", "10s")
	v.SetDefault("log_level", "info")
	v.SetDefault("broadcast_cache_ttl", "30s")
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported db_driver %q", c.DBDriver)
	}

	switch c.RatingLock {
	case "local", "redis":
	default:
		return fmt.Errorf("unsupported rating_lock %q", c.RatingLock)
	}
	if c.RatingLockTTL <= 0 {
		return fmt.Errorf("rating_lock_ttl must be positive, got %s", c.RatingLockTTL)
	}

	if c.IsProduction() && (c.JWTSecret == "default-jwt-secret-change-me" || c.SessionSecret == "default-secret-key-change-me") {
		return fmt.Errorf("jwt_secret and session_secret must be set in release mode")
	}

	return nil
}
