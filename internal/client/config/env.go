package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays values from the process environment. A .env file in
// the working directory is loaded first if present; real environment
// variables win over it.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ENDPOINT_ADDR"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("SHARED_KEY"); v != "" {
		config.SharedKeyHex = v
	}
	if v := os.Getenv("VOYAGE_URL"); v != "" {
		config.VoyageURL = v
	}
}
