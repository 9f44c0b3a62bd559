package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays values from the process environment. A .env file in
// the working directory is loaded first if present (the deployment habit
// this service inherited); real environment variables win over it.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ENDPOINT_ADDR"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SHARED_KEY"); v != "" {
		config.SharedKeyHex = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.JWTSecret = v
	}
	if v := os.Getenv("ACCESS_TOKEN_TTL_SECONDS"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			config.AccessTokenValidityDuration = time.Duration(seconds) * time.Second
		}
	}
	if v := os.Getenv("REPLAY_WINDOW_SECONDS"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			config.ReplayWindow = time.Duration(seconds) * time.Second
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		config.RedisAddr = v
	}
	if v := os.Getenv("USE_IN_MEMORY_STORE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.UseInMemoryStore = b
		}
	}
}
