package config

import (
	"os"
	"strings"
)

type Config struct {
	BackupRoot  string
	Files       []string
	DryRun      bool
	Verbose     bool
	Interactive bool
}

// FillFromEnv applies PICOBAK_* environment fallbacks for flags the
// user did not set on the command line.
func (c *Config) FillFromEnv() {
	if !c.Verbose {
		c.Verbose = envTruthy("PICOBAK_VERBOSE")
	}
	if !c.DryRun {
		c.DryRun = envTruthy("PICOBAK_DRY_RUN")
	}
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
