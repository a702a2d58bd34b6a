package utils

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	Pricing  PricingConfig
	Payment  PaymentConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// RedisConfig is optional: an empty Addr disables the seat cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	SeatTTL  time.Duration
}

type SessionConfig struct {
	ExpiryHours int
	// MaxIdle is how long an in-progress booking session survives
	// without activity before the sweeper discards it.
	MaxIdle time.Duration
}

type PricingConfig struct {
	TaxPercent   int
	Currency     string
	PremiumPrice int64
	GeneralPrice int64
}

type PaymentConfig struct {
	// SimulatedDelay stands in for a payment gateway round trip.
	SimulatedDelay time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SEAT_CACHE_TTL_SECONDS", 30)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("BOOKING_SESSION_MAX_IDLE_MINUTES", 30)
	viper.SetDefault("TAX_PERCENT", 13)
	viper.SetDefault("CURRENCY", "NPR")
	viper.SetDefault("PREMIUM_SEAT_PRICE", 650)
	viper.SetDefault("GENERAL_SEAT_PRICE", 350)
	viper.SetDefault("PAYMENT_DELAY_MS", 2000)

	// A missing .env is fine: defaults plus real environment variables
	// carry the configuration.
	var pathErr *os.PathError
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, &pathErr) {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASS"),
			DB:       viper.GetInt("REDIS_DB"),
			SeatTTL:  time.Duration(viper.GetInt("SEAT_CACHE_TTL_SECONDS")) * time.Second,
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
			MaxIdle:     time.Duration(viper.GetInt("BOOKING_SESSION_MAX_IDLE_MINUTES")) * time.Minute,
		},
		Pricing: PricingConfig{
			TaxPercent:   viper.GetInt("TAX_PERCENT"),
			Currency:     viper.GetString("CURRENCY"),
			PremiumPrice: viper.GetInt64("PREMIUM_SEAT_PRICE"),
			GeneralPrice: viper.GetInt64("GENERAL_SEAT_PRICE"),
		},
		Payment: PaymentConfig{
			SimulatedDelay: time.Duration(viper.GetInt("PAYMENT_DELAY_MS")) * time.Millisecond,
		},
	}

	return config, nil
}
