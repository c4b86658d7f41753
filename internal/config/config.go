package config

import (
	"os"
	"strconv"
)

type Config struct {
	LogLevel    string
	LogFormat   string
	DatabaseURL string
	TickRate    int
	Seed        int64
	StartLevel  int
	LevelTable  string
	MaxTicks    int
	AutoStart   bool
}

func Load() *Config {
	return &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		TickRate:    getEnvInt("TICK_RATE", 60),
		Seed:        getEnvInt64("SEED", 1),
		StartLevel:  getEnvInt("START_LEVEL", 1),
		LevelTable:  getEnv("LEVEL_TABLE", ""),
		MaxTicks:    getEnvInt("MAX_TICKS", 0),
		AutoStart:   getEnvBool("AUTO_START", true),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
