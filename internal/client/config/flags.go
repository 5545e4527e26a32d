package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/gamefolio/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend server
//	-f string   admin secret fingerprint (hex SHA-256)
//	-l string   locale tag ("en" or "nl")
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL to access server")
	fs.StringVar(&cfg.AdminFingerprint, "f", cfg.AdminFingerprint, "admin secret fingerprint (hex sha256)")
	fs.StringVar(&cfg.Language, "l", cfg.Language, "locale tag")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
