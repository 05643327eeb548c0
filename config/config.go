package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Clinic identity.
	ClinicName     string `mapstructure:"CLINIC_NAME"`
	ClinicTimezone string `mapstructure:"CLINIC_TIMEZONE"`

	// Structured store (MongoDB). Empty DATABASE_URL disables it.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Spreadsheet store (Google Sheets). Empty GOOGLE_SHEET_ID disables it.
	GoogleSheetID               string `mapstructure:"GOOGLE_SHEET_ID"`
	GoogleSheetRange            string `mapstructure:"GOOGLE_SHEET_RANGE"`
	GoogleClientEmail           string `mapstructure:"GOOGLE_CLIENT_EMAIL"`
	GooglePrivateKey            string `mapstructure:"GOOGLE_PRIVATE_KEY"`
	GoogleServiceAccountKeyFile string `mapstructure:"GOOGLE_SERVICE_ACCOUNT_KEY_FILE"`

	// Confirmation email. Both SMTP_USER and SMTP_PASS must be set to enable it.
	SMTPHost string `mapstructure:"SMTP_HOST"`
	SMTPPort int    `mapstructure:"SMTP_PORT"`
	SMTPUser string `mapstructure:"SMTP_USER"`
	SMTPPass string `mapstructure:"SMTP_PASS"`

	// Redis configuration for the rate limiter. Empty REDIS_ADDR falls back
	// to the in-memory limiter.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Upper bound on each persistence attempt.
	StoreTimeoutSeconds int `mapstructure:"STORE_TIMEOUT_SECONDS"`
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
	viper.SetDefault("CLINIC_NAME", "Happy Teeth Clinic")
	viper.SetDefault("CLINIC_TIMEZONE", "Asia/Karachi")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_NAME", "brightsmile")
	viper.SetDefault("GOOGLE_SHEET_ID", "")
	viper.SetDefault("GOOGLE_SHEET_RANGE", "Sheet1!A:F")
	viper.SetDefault("GOOGLE_CLIENT_EMAIL", "")
	viper.SetDefault("GOOGLE_PRIVATE_KEY", "")
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_KEY_FILE", "credentials.json")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 465)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASS", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("STORE_TIMEOUT_SECONDS", 10)

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
