package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Gemini configuration. An empty key leaves the composer in
	// template-only mode.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	// Stripe configuration. An empty key keeps checkout in demo mode.
	StripeSecretKey string `mapstructure:"STRIPE_SECRET_KEY"`
	PublicBaseURL   string `mapstructure:"PUBLIC_BASE_URL"`

	// Data files.
	CatalogPath   string `mapstructure:"CATALOG_PATH"`
	TransportPath string `mapstructure:"TRANSPORT_PATH"`
	StaticDir     string `mapstructure:"STATIC_DIR"`

	// Airport code assumed for travelers that never told us theirs.
	DefaultHomeAirport string `mapstructure:"DEFAULT_HOME_AIRPORT"`
}

var AppConfig Config

func LoadConfig() {
	// Load a local .env first so viper's AutomaticEnv picks it up.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the process environment")
	}

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
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")
	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	viper.SetDefault("CATALOG_PATH", "data/catalog.json")
	viper.SetDefault("TRANSPORT_PATH", "data/transport.json")
	viper.SetDefault("STATIC_DIR", "static")
	viper.SetDefault("DEFAULT_HOME_AIRPORT", "SFO")

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
