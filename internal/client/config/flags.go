package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/voyagegate/internal/flagx"
)

// parseFlags populates selected client-server Config fields from
// command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-k string   pre-shared envelope key, hex
//	-u string   voyage front-end URL handed off with the token
//
// The function first filters os.Args to only the flags it recognizes
// using flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-u"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.SharedKeyHex, "k", config.SharedKeyHex, "pre-shared envelope key (hex)")
	fs.StringVar(&config.VoyageURL, "u", config.VoyageURL, "voyage front-end URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
