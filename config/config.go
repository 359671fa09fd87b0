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
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Conversation session settings.
	SessionTTLMinutes  int `mapstructure:"SESSION_TTL_MINUTES"`
	HistoryMaxMessages int `mapstructure:"HISTORY_MAX_MESSAGES"`

	// Facility opening hours ("HH:MM"). Bookings must end before closing.
	WeekdayOpen  string `mapstructure:"WEEKDAY_OPEN"`
	WeekdayClose string `mapstructure:"WEEKDAY_CLOSE"`
	WeekendOpen  string `mapstructure:"WEEKEND_OPEN"`
	WeekendClose string `mapstructure:"WEEKEND_CLOSE"`

	// Gemini API key for the chit-chat fallback.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
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
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "multisport")
	viper.SetDefault("SESSION_TTL_MINUTES", 60)
	viper.SetDefault("HISTORY_MAX_MESSAGES", 20)
	viper.SetDefault("WEEKDAY_OPEN", "08:00")
	viper.SetDefault("WEEKDAY_CLOSE", "22:00")
	viper.SetDefault("WEEKEND_OPEN", "09:00")
	viper.SetDefault("WEEKEND_CLOSE", "18:00")
	viper.SetDefault("GEMINI_API_KEY", "")

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
