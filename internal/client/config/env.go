package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names. A .env file in the working directory is loaded
// first; real environment variables win over it.
const (
	envServerAddr = "CAREERMATE_SERVER_ADDR"
	envTimeout    = "CAREERMATE_TIMEOUT"
	envDataDir    = "CAREERMATE_DATA_DIR"
)

// parseEnv overlays Config with values from the environment. Missing file or
// unset variables are not errors; a malformed timeout is ignored.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envServerAddr); v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v := os.Getenv(envTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(envDataDir); v != "" {
		cfg.DataDir = v
	}
}
