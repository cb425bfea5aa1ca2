package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	Dungeon DungeonConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL      string // takes precedence over Addr when set
	Addr     string
	Password string
	DB       int
}

// DungeonConfig holds dungeon generation defaults
type DungeonConfig struct {
	Width  int
	Height int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Addr: getEnvOrDefault("SERVER_ADDR", ":8080"),
		},
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Dungeon: DungeonConfig{
			Width:  getEnvAsIntOrDefault("DUNGEON_WIDTH", 20),
			Height: getEnvAsIntOrDefault("DUNGEON_HEIGHT", 20),
		},
	}

	// A grid narrower than 2 in either dimension cannot hold both anchors
	if cfg.Dungeon.Width < 2 || cfg.Dungeon.Height < 2 {
		return nil, fmt.Errorf("DUNGEON_WIDTH and DUNGEON_HEIGHT must be at least 2, got %dx%d",
			cfg.Dungeon.Width, cfg.Dungeon.Height)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
