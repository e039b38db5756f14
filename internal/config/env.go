package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Environment override variables. Each replaces the corresponding config
// field when set and non-empty.
const (
	EnvSourceDir    = "DOCSDISPATCH_SOURCE_DIR"
	EnvOutputPrefix = "DOCSDISPATCH_OUTPUT_PREFIX"
	EnvEnvVar       = "DOCSDISPATCH_ENV_VAR"
	EnvCommand      = "DOCSDISPATCH_COMMAND"
)

// loadEnvFiles loads .env/.env.local into the process environment. The
// first file that parses wins and existing variables are never overridden.
func loadEnvFiles() {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			slog.Warn("Failed to load environment file", "path", envPath, "error", err)
			continue
		}
		slog.Debug("Loaded environment variables", "path", envPath)
		return
	}
}

// applyEnvOverrides layers process environment values over cfg.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvSourceDir); v != "" {
		cfg.SourceDir = v
	}
	if v := os.Getenv(EnvOutputPrefix); v != "" {
		cfg.OutputPrefix = v
	}
	if v := os.Getenv(EnvEnvVar); v != "" {
		cfg.EnvVar = v
	}
	if v := os.Getenv(EnvCommand); v != "" {
		cfg.Command = v
	}
}
