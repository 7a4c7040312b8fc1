package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string

	// ScraperCommand is the external itinerary scraper invocation, split on
	// whitespace. The subcommand and JSON payload are appended as arguments.
	ScraperCommand string
	ScraperTimeout time.Duration
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDurationSecondsEnv(key string, def int) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(def) * time.Second
	}
	seconds, err := strconv.Atoi(v)
	if err != nil || seconds < 1 {
		log.Printf("Invalid %s=%q, using default %ds", key, v, def)
		return time.Duration(def) * time.Second
	}
	return time.Duration(seconds) * time.Second
}

// Load reads all env vars and builds the config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:           getEnv("PORT", "3000"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		ScraperCommand: getEnv("SCRAPER_COMMAND", "python3 -m scrapers.scraper_manager"),
		ScraperTimeout: getDurationSecondsEnv("SCRAPER_TIMEOUT", 30),
	}
}
