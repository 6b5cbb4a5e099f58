package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/novelfetch"
	"gopkg.in/yaml.v3"
)

// Environment variables read by the CLI.
const (
	ConfigEnv  = "NOVELFETCH_CONFIG"
	DBEnv      = "NOVELFETCH_DB"
	DataDirEnv = "NOVELFETCH_DATA_DIR"
)

// DefaultDataDir is where generated files are written when nothing else
// is configured.
const DefaultDataDir = "data"

// Config holds defaults for command flags.
type Config struct {
	Timeout      time.Duration `yaml:"timeout"`
	Concurrency  int           `yaml:"concurrency"`
	DataDir      string        `yaml:"dataDir"`
	DBPath       string        `yaml:"dbPath"`
	EbookConvert string        `yaml:"ebookConvert"`
	BaseURL      string        `yaml:"baseURL"`
}

// LoadConfig reads the YAML configuration file at path. A missing file
// yields an empty Config unless required is set.
func LoadConfig(path string, required bool) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !required {
		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, novelfetch.Errorf(novelfetch.EINVALID, "invalid config file %s: %v", path, err)
	}
	if cfg.Timeout < 0 || cfg.Concurrency < 0 {
		return cfg, novelfetch.Errorf(novelfetch.EINVALID, "config file %s: timeout and concurrency must not be negative", path)
	}
	return cfg, nil
}

// withDefaults fills fields the file left unset from the environment, then
// from built-in defaults.
func (c Config) withDefaults(getenv func(string) string) Config {
	if c.DBPath == "" {
		c.DBPath = getenv(DBEnv)
	}
	if c.DBPath == "" {
		c.DBPath = defaultDBPath()
	}
	if c.DataDir == "" {
		c.DataDir = getenv(DataDirEnv)
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	if c.BaseURL == "" {
		c.BaseURL = novelfetch.DefaultBaseURL
	}
	return c
}

// configPath returns the configuration file location and whether it was
// chosen explicitly.
func configPath(getenv func(string) string) (string, bool) {
	if path := getenv(ConfigEnv); path != "" {
		return path, true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, ".novelfetch", "config.yaml"), false
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "novelfetch.db"
	}
	return filepath.Join(home, ".novelfetch", "novelfetch.db")
}
