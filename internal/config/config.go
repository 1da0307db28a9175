// Package config reads server settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr           string
	TLSCert        string
	TLSKey         string
	LastResultKey  []byte
	LastResultTTL  time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	BatchWorkers   int
}

// TLS reports whether both certificate and key are configured.
func (c Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

// Load reads the given .env files (".env" when none are named) and then the
// process environment. Missing files are ignored.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading env file: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults for unset values.
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	var (
		c   Config
		err error
	)
	c.Addr = get("ADDR", ":8080")
	c.TLSCert = getenv("TLS_CERT")
	c.TLSKey = getenv("TLS_KEY")
	if (c.TLSCert == "") != (c.TLSKey == "") {
		return Config{}, errors.New("TLS_CERT and TLS_KEY must be set together")
	}

	key := getenv("LAST_RESULT_KEY")
	if key == "" {
		return Config{}, errors.New("LAST_RESULT_KEY environment variable is not set")
	}
	c.LastResultKey = []byte(key)

	if c.LastResultTTL, err = time.ParseDuration(get("LAST_RESULT_TTL", "720h")); err != nil {
		return Config{}, fmt.Errorf("LAST_RESULT_TTL: %w", err)
	}
	if c.LastResultTTL <= 0 {
		return Config{}, errors.New("LAST_RESULT_TTL must be positive")
	}
	if c.RateLimitRPS, err = strconv.ParseFloat(get("RATE_LIMIT_RPS", "5"), 64); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	if c.RateLimitBurst, err = positiveInt(get("RATE_LIMIT_BURST", "10")); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}
	if c.BatchWorkers, err = positiveInt(get("BATCH_WORKERS", "4")); err != nil {
		return Config{}, fmt.Errorf("BATCH_WORKERS: %w", err)
	}
	return c, nil
}

func positiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("must be at least 1, got %d", n)
	}
	return n, nil
}
