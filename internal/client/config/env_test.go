package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("ENDPOINT_ADDR", ":6000")
	t.Setenv("SHARED_KEY", "deadbeef")
	t.Setenv("VOYAGE_URL", "http://voyage:3001")

	config := &Config{}
	config.LoadDefaults()
	parseEnv(config)

	assert.Equal(t, ":6000", config.EndpointAddr)
	assert.Equal(t, "deadbeef", config.SharedKeyHex)
	assert.Equal(t, "http://voyage:3001", config.VoyageURL)
}

func TestParseEnv_EmptyKeepsDefaults(t *testing.T) {
	config := &Config{}
	config.LoadDefaults()
	parseEnv(config)

	assert.Equal(t, ":8000", config.EndpointAddr)
	assert.Equal(t, "http://localhost:3001", config.VoyageURL)
}
