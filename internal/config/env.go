package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvDatabasePath = "NOTEKEEPER_DB_PATH"
	EnvImageDir     = "NOTEKEEPER_IMAGE_DIR"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first if present; variables already set in
// the real environment win over .env values.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv(EnvDatabasePath); ok && v != "" {
		cfg.DatabasePath = v
	}
	if v, ok := os.LookupEnv(EnvImageDir); ok && v != "" {
		cfg.ImageDir = v
	}
}
