// Package config handles configuration for the client party, including
// defaults, JSON overlay, environment variables and command-line flags.
package config

// Config holds runtime settings for the voyagegate client server.
//
// Fields:
//   - EndpointAddr: bind address for the launch-token HTTP endpoint.
//   - SharedKeyHex: pre-shared envelope key, 32 bytes hex-encoded.
//     Must match the app party's key.
//   - VoyageURL: the URL of the voyage front-end that the minted token
//     is handed off to. Returned verbatim to the caller.
type Config struct {
	EndpointAddr string
	SharedKeyHex string
	VoyageURL    string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8000"
	c.SharedKeyHex = ""
	c.VoyageURL = "http://localhost:3001"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment (including a .env file if
// present) and finally command-line flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
