package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Razorpay checkout credentials. The key ID is public and handed to the
	// checkout widget; the secret never leaves the server.
	RazorpayKeyID     string `mapstructure:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret string `mapstructure:"RAZORPAY_KEY_SECRET"`

	// Firebase service account used to verify Google sign-in ID tokens.
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`

	JWTSecret         string `mapstructure:"JWT_SECRET"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Resort inventory and pricing.
	TotalTents      int     `mapstructure:"TOTAL_TENTS"`
	ReservedTents   int     `mapstructure:"RESERVED_TENTS"`
	TentNightlyRate float64 `mapstructure:"TENT_NIGHTLY_RATE"`
	TaxRate         float64 `mapstructure:"TAX_RATE"`
	AdvanceFraction float64 `mapstructure:"ADVANCE_FRACTION"`

	// Months (1-12) during which the resort accepts bookings.
	OpenMonths []int `mapstructure:"OPEN_MONTHS"`

	// Payment status polling for dismissed checkouts.
	PollIntervalSeconds int `mapstructure:"POLL_INTERVAL_SECONDS"`
	PollMaxAttempts     int `mapstructure:"POLL_MAX_ATTEMPTS"`

	// Minutes an unpaid PENDING booking holds its tents before expiry.
	PaymentHoldMinutes int `mapstructure:"PAYMENT_HOLD_MINUTES"`

	// Cloudinary credentials for gallery media.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
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
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "arakucamp")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("TOTAL_TENTS", 50)
	viper.SetDefault("RESERVED_TENTS", 5)
	viper.SetDefault("TENT_NIGHTLY_RATE", 2250)
	viper.SetDefault("TAX_RATE", 0.18)
	viper.SetDefault("ADVANCE_FRACTION", 0.5)
	// November through February.
	viper.SetDefault("OPEN_MONTHS", []int{11, 12, 1, 2})
	viper.SetDefault("POLL_INTERVAL_SECONDS", 1)
	viper.SetDefault("POLL_MAX_ATTEMPTS", 30)
	viper.SetDefault("PAYMENT_HOLD_MINUTES", 30)

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
