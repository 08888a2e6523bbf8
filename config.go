package main

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
)

const (
	envLogLevel   = "TXKV_LOG_LEVEL"
	envMaxKeySize = "TXKV_MAX_KEY_SIZE"
)

type Config struct {
	LogLevel   zerolog.Level
	MaxKeySize int
}

func DefaultConfig() Config {
	return Config{
		LogLevel:   zerolog.WarnLevel,
		MaxKeySize: 1024,
	}
}

// LoadConfig applies environment overrides on top of DefaultConfig.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if raw := getenv(envLogLevel); raw != "" {
		level, err := zerolog.ParseLevel(raw)
		if err != nil {
			return cfg, fmt.Errorf("config: %s: %w", envLogLevel, err)
		}
		cfg.LogLevel = level
	}

	if raw := getenv(envMaxKeySize); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return cfg, fmt.Errorf("config: %s must be a positive integer, got %q", envMaxKeySize, raw)
		}
		cfg.MaxKeySize = size
	}

	return cfg, nil
}
