package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

var ErrEmptyStoragePath = errors.New(
	"error getting PS_STORAGE_PATH: variable not specified or contains an empty string",
)

type Config struct {
	Env           string // Env is the current environment: local, dev, prod.
	StoragePath   string // StoragePath is the path to the SQLite database file.
	MaxPages      int    // MaxPages is the maximum number of listing pages per run.
	RateLimit     time.Duration
	MaxRetries    int
	RetentionDays int           // RetentionDays is how long price history is kept.
	Interval      time.Duration // Interval between scrape runs when the bot keeps the process alive.
	Tg            Telegram
}

type Telegram struct {
	Token   string        // Token is an unique telegram bot token. Empty disables the bot.
	Timeout time.Duration // Timeout is a poller timeout duration.
}

// MustLoad loads the configuration from environment variables and returns a Config struct.
func MustLoad() *Config {
	// Automatically binds environment variables to config keys
	viper.SetEnvPrefix("PS")
	viper.AutomaticEnv()

	// optional args
	viper.SetDefault("ENV", "production")
	viper.SetDefault("STORAGE_PATH", "prices.db")
	viper.SetDefault("MAX_PAGES", 3)
	viper.SetDefault("RATE_LIMIT", "1000ms")
	viper.SetDefault("MAX_RETRIES", 3)
	viper.SetDefault("RETENTION_DAYS", 90)
	viper.SetDefault("SCRAPE_INTERVAL", "6h")
	viper.SetDefault("TELEGRAM_TIMEOUT", "15s")

	if viper.GetString("STORAGE_PATH") == "" {
		panic(ErrEmptyStoragePath)
	}

	return &Config{
		Env:           viper.GetString("ENV"),
		StoragePath:   viper.GetString("STORAGE_PATH"),
		MaxPages:      viper.GetInt("MAX_PAGES"),
		RateLimit:     viper.GetDuration("RATE_LIMIT"),
		MaxRetries:    viper.GetInt("MAX_RETRIES"),
		RetentionDays: viper.GetInt("RETENTION_DAYS"),
		Interval:      viper.GetDuration("SCRAPE_INTERVAL"),
		Tg: Telegram{
			Token:   viper.GetString("TELEGRAM_TOKEN"),
			Timeout: viper.GetDuration("TELEGRAM_TIMEOUT"),
		},
	}
}
