package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	SavePath    string // save file path for the file backend
	RedisURL    string // when set, saves go to Redis instead of the file
	SaveSlot    string // Redis save slot name
	Environment string
	LogLevel    slog.Level
}

func Load() *Config {
	return &Config{
		SavePath:    getEnv("SAVE_PATH", "savegame.json"),
		RedisURL:    getEnv("REDIS_URL", ""),
		SaveSlot:    getEnv("SAVE_SLOT", "default"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
