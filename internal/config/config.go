// internal/config/config.go
//
// Process configuration, read from the environment.
//
// Call godotenv.Load() (main does) before Load so values from a local .env
// file are visible. Every variable has a development-friendly default;
// Load validates the result and fails fast on bad values.

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config holds every setting the commands read.
type Config struct {
	Port       string `validate:"required,numeric"`
	LogLevel   string `validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogFormat  string `validate:"oneof=console json"`
	LogFile    string // empty = stderr only
	LogMaxMB   int    `validate:"gte=1"`
	SiteURL    string `validate:"required,url"`
	Timezone   string
	Env        string `validate:"oneof=development production"`
	CookieKey  string `validate:"required,min=16"`
	FavoriteDB string `validate:"required"`
	OutDir     string `validate:"required"`
}

// Load reads the environment into a validated Config.
func Load() (Config, error) {
	c := Config{
		Port:       getEnv("PORT", "5175"),
		LogLevel:   strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:  strings.ToLower(getEnv("LOG_FORMAT", "console")),
		LogFile:    os.Getenv("LOG_FILE"),
		LogMaxMB:   envInt("LOG_MAX_MB", 10),
		SiteURL:    strings.TrimRight(getEnv("SITE_URL", "http://localhost:5175"), "/"),
		Timezone:   getEnv("TIMEZONE", "Local"),
		Env:        getEnv("APP_ENV", "development"),
		CookieKey:  getEnv("COOKIE_SECRET", "dev_cookie_secret_change_me"),
		FavoriteDB: getEnv("FAVORITES_DB", "./data/favorites.db"),
		OutDir:     getEnv("OUT_DIR", "out"),
	}
	if err := validate.Struct(c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if c.Timezone != "Local" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return Config{}, fmt.Errorf("config: TIMEZONE %q: %w", c.Timezone, err)
		}
	}
	return c, nil
}

// Production reports whether APP_ENV=production.
func (c Config) Production() bool { return c.Env == "production" }

// Location returns the configured reset-clock zone.
func (c Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt parses k as an int, falling back to def.
func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
