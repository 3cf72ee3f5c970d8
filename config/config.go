package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    string `mapstructure:"ALLOWED_ORIGINS"`

	RequestTimeoutSeconds      int `mapstructure:"REQUEST_TIMEOUT_SECONDS"`
	HealthCheckIntervalSeconds int `mapstructure:"HEALTH_CHECK_INTERVAL_SECONDS"`

	// Google service account and target spreadsheet.
	GoogleClientEmail string `mapstructure:"GOOGLE_CLIENT_EMAIL"`
	GooglePrivateKey  string `mapstructure:"GOOGLE_PRIVATE_KEY"`
	GoogleSheetID     string `mapstructure:"GOOGLE_SHEET_ID"`
	GoogleSheetName   string `mapstructure:"GOOGLE_SHEET_NAME"`

	// Optional Redis shared by every instance for rate limiting.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisRateLimitDB int    `mapstructure:"REDIS_RATE_LIMIT_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 60)
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", 15)
	viper.SetDefault("HEALTH_CHECK_INTERVAL_SECONDS", 60)
	viper.SetDefault("GOOGLE_CLIENT_EMAIL", "")
	viper.SetDefault("GOOGLE_PRIVATE_KEY", "")
	viper.SetDefault("GOOGLE_SHEET_ID", "")
	viper.SetDefault("GOOGLE_SHEET_NAME", "Sheet1")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_RATE_LIMIT_DB", 0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// Origins splits ALLOWED_ORIGINS into the list CORS expects.
func (c Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// RequestTimeout is the deadline applied to a single spreadsheet call.
func (c Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

func (c Config) HealthCheckInterval() time.Duration {
	if c.HealthCheckIntervalSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.HealthCheckIntervalSeconds) * time.Second
}
