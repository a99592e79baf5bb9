package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DatabaseURL     string
	GoogleAPIKey    string
	RunMigrations   bool
	ShutdownTimeout int
}

// Load reads configuration from the environment, with .env as a
// fallback for local dev. DATABASE_URL and GOOGLE_API_KEY are both
// optional: without a database the in-memory store is used, and
// without an API key the audio endpoints report that they are not
// configured.
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	shutdownTimeout := 1
	if v, err := strconv.Atoi(os.Getenv("SHUTDOWN_TIMEOUT")); err == nil && v > 0 {
		shutdownTimeout = v
	}

	return &Config{
		Port:            port,
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		GoogleAPIKey:    os.Getenv("GOOGLE_API_KEY"),
		RunMigrations:   os.Getenv("RUN_MIGRATIONS") == "true",
		ShutdownTimeout: shutdownTimeout,
	}
}
