package main

import (
	"strconv"
	"time"

	"github.com/fwojciec/novelfetch"
	nfhttp "github.com/fwojciec/novelfetch/http"
	"github.com/gin-gonic/gin"
)

// Config holds server settings read from the environment.
type Config struct {
	Port        string
	BaseURL     string
	Timeout     time.Duration
	Concurrency int
	GinMode     string
}

// LoadConfig reads the server configuration through getenv, falling back
// to defaults for unset variables.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:        getEnv(getenv, "PORT", "8000"),
		BaseURL:     getEnv(getenv, "NOVELFETCH_BASE_URL", novelfetch.DefaultBaseURL),
		Timeout:     nfhttp.DefaultFetchTimeout,
		Concurrency: 1,
		GinMode:     getenv("GIN_MODE"),
	}

	if v := getenv("NOVELFETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, novelfetch.Errorf(novelfetch.EINVALID, "NOVELFETCH_TIMEOUT must be a positive duration, got %q", v)
		}
		cfg.Timeout = d
	}

	if v := getenv("NOVELFETCH_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, novelfetch.Errorf(novelfetch.EINVALID, "NOVELFETCH_CONCURRENCY must be a positive integer, got %q", v)
		}
		cfg.Concurrency = n
	}

	switch cfg.GinMode {
	case "", gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return Config{}, novelfetch.Errorf(novelfetch.EINVALID, "GIN_MODE must be debug, release or test, got %q", cfg.GinMode)
	}

	return cfg, nil
}

func getEnv(getenv func(string) string, key, fallback string) string {
	if value := getenv(key); value != "" {
		return value
	}
	return fallback
}
