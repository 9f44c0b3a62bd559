package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/voyagegate/internal/flagx"
)

// parseFlags populates selected app-server Config fields from
// command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8001")
//	-d string   PostgreSQL DSN
//	-k string   pre-shared envelope key, hex
//	-s string   credential-signing secret
//	-t int      credential validity, seconds
//	-w int      replay window, seconds
//	-r string   redis address for the consumed-nonce store
//	-m          use the in-memory store instead of postgres
//
// The function first filters os.Args to only the flags it recognizes
// using flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-k", "-s", "-t", "-w", "-r", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SharedKeyHex, "k", config.SharedKeyHex, "pre-shared envelope key (hex)")
	fs.StringVar(&config.JWTSecret, "s", config.JWTSecret, "credential signing secret")

	accessTokenValiditySeconds := fs.Int("t", int(config.AccessTokenValidityDuration.Seconds()), "access_token_validity_duration (in seconds)")
	replayWindowSeconds := fs.Int("w", int(config.ReplayWindow.Seconds()), "replay_window (in seconds)")

	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address for consumed-nonce store")
	fs.BoolVar(&config.UseInMemoryStore, "m", config.UseInMemoryStore, "use in-memory store")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValiditySeconds) * time.Second
	config.ReplayWindow = time.Duration(*replayWindowSeconds) * time.Second
}
