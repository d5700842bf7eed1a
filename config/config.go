package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr         string `mapstructure:"REDIS_ADDR"`
	RedisPassword     string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB      int    `mapstructure:"REDIS_CACHE_DB"`
	RedisTraceQueueDB int    `mapstructure:"REDIS_TRACE_QUEUE_DB"`

	// Resolution pipeline knobs.
	DefaultTimezone     string  `mapstructure:"DEFAULT_TIMEZONE"`
	BusinessStartMinute int     `mapstructure:"BUSINESS_START_MINUTE"`
	BusinessEndMinute   int     `mapstructure:"BUSINESS_END_MINUTE"`
	DefaultDurationMin  int     `mapstructure:"DEFAULT_DURATION_MIN"`
	SlotStepMinutes     int     `mapstructure:"SLOT_STEP_MINUTES"`
	FuzzyMatchThreshold float64 `mapstructure:"FUZZY_MATCH_THRESHOLD"`
	MaxSuggestions      int     `mapstructure:"MAX_SUGGESTIONS"`
	FlexibleDateDays    int     `mapstructure:"FLEXIBLE_DATE_DAYS"`
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
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_TRACE_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "concierge")
	viper.SetDefault("DEFAULT_TIMEZONE", "America/Mexico_City")
	viper.SetDefault("BUSINESS_START_MINUTE", 8*60)
	viper.SetDefault("BUSINESS_END_MINUTE", 18*60)
	viper.SetDefault("DEFAULT_DURATION_MIN", 60)
	viper.SetDefault("SLOT_STEP_MINUTES", 30)
	viper.SetDefault("FUZZY_MATCH_THRESHOLD", 0.7)
	viper.SetDefault("MAX_SUGGESTIONS", 5)
	viper.SetDefault("FLEXIBLE_DATE_DAYS", 3)

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
