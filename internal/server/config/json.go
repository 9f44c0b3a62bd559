package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/voyagegate/internal/flagx"
	"github.com/dmitrijs2005/voyagegate/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "300s" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files; after unmarshalling, its fields are copied into
// the runtime Config struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddr                string         `json:"endpoint_addr"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SharedKeyHex                string         `json:"shared_key"`
	JWTSecret                   string         `json:"jwt_secret"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	ReplayWindow                timex.Duration `json:"replay_window"`
	RedisAddr                   string         `json:"redis_addr"`
	UseInMemoryStore            bool           `json:"use_in_memory_store"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. If neither flag is set,
// nothing is loaded. If the file cannot be read or contains invalid
// JSON, the function panics (missing/malformed startup config is fatal).
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SharedKeyHex = c.SharedKeyHex
	config.JWTSecret = c.JWTSecret
	config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration.Duration)
	config.ReplayWindow = time.Duration(c.ReplayWindow.Duration)
	config.RedisAddr = c.RedisAddr
	config.UseInMemoryStore = c.UseInMemoryStore
}
