package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults for the snapshot fetcher.
const (
	DefaultLeague         = "Ancestor"
	DefaultDataDir        = "data"
	DefaultRequestTimeout = 30 * time.Second
	DefaultRequestsPerSec = 2.0
)

// Environment variables understood by Load.
const (
	EnvLeague         = "POEGEMGAP_LEAGUE"
	EnvDataDir        = "POEGEMGAP_DATA_DIR"
	EnvRequestTimeout = "POEGEMGAP_REQUEST_TIMEOUT"
	EnvRequestsPerSec = "POEGEMGAP_REQUESTS_PER_SEC"
)

// Config holds process-wide settings. CLI flags override these.
type Config struct {
	League         string
	DataDir        string
	RequestTimeout time.Duration
	RequestsPerSec float64
}

// Load builds a Config from defaults, a .env file in the working directory
// (if present) and the environment, in increasing precedence.
func Load() Config {
	// Missing .env is fine, the environment alone is a valid source.
	_ = godotenv.Load()

	cfg := Config{
		League:         DefaultLeague,
		DataDir:        DefaultDataDir,
		RequestTimeout: DefaultRequestTimeout,
		RequestsPerSec: DefaultRequestsPerSec,
	}

	if v := os.Getenv(EnvLeague); v != "" {
		cfg.League = v
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv(EnvRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(EnvRequestsPerSec); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.RequestsPerSec = f
		}
	}

	return cfg
}
