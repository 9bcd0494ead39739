package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

// DefaultSourceURL is the public doctor directory the page lists.
const DefaultSourceURL = "https://srijandubey.github.io/campus-api-mock/SRM-C1-25.json"

type Config struct {
	App     AppConfig
	Source  SourceConfig
	Listing ListingConfig
	Redis   RedisConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type SourceConfig struct {
	URL string
	// Timeout of zero means no timeout.
	Timeout time.Duration
}

type ListingConfig struct {
	SpecialtyMatch  string
	SuggestionLimit int
}

type RedisConfig struct {
	Host        string
	Port        string
	Password    string
	DB          int
	SnapshotTTL time.Duration
}

// Enabled reports whether the Redis snapshot mirror is configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DOCTORS_SOURCE_URL", DefaultSourceURL)
	v.SetDefault("DOCTORS_SOURCE_TIMEOUT", "0s")
	v.SetDefault("SPECIALTY_MATCH", "all")
	v.SetDefault("SUGGESTION_LIMIT", 3)
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_SNAPSHOT_TTL", "24h")

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	sourceTimeout, err := time.ParseDuration(v.GetString("DOCTORS_SOURCE_TIMEOUT"))
	if err != nil {
		sourceTimeout = 0
	}

	snapshotTTL, err := time.ParseDuration(v.GetString("REDIS_SNAPSHOT_TTL"))
	if err != nil {
		snapshotTTL = 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		Source: SourceConfig{
			URL:     v.GetString("DOCTORS_SOURCE_URL"),
			Timeout: sourceTimeout,
		},
		Listing: ListingConfig{
			SpecialtyMatch:  v.GetString("SPECIALTY_MATCH"),
			SuggestionLimit: v.GetInt("SUGGESTION_LIMIT"),
		},
		Redis: RedisConfig{
			Host:        v.GetString("REDIS_HOST"),
			Port:        v.GetString("REDIS_PORT"),
			Password:    v.GetString("REDIS_PASSWORD"),
			DB:          v.GetInt("REDIS_DB"),
			SnapshotTTL: snapshotTTL,
		},
	}

	return config, nil
}
