package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/voyagegate/internal/flagx"
)

// JsonConfig is the intermediate DTO used for reading JSON configuration
// files; after unmarshalling, its fields are copied into the runtime
// Config struct.
type JsonConfig struct {
	EndpointAddr string `json:"endpoint_addr"`
	SharedKeyHex string `json:"shared_key"`
	VoyageURL    string `json:"voyage_url"`
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
	config.SharedKeyHex = c.SharedKeyHex
	config.VoyageURL = c.VoyageURL
}
