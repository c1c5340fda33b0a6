// Package config resolves where the catalog files live. Paths are held in
// an explicit Config value injected into each store rather than selected
// by build flags, so tests point the same code at a scratch directory.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config carries the backing file for every catalog plus logging options.
type Config struct {
	DataDir  string
	LogLevel string

	CustomersFile string
	VehiclesFile  string
	ServicesFile  string
	DiscountsFile string
	HistoryFile   string
}

// Load builds the production configuration from a .env file (when
// present) and the environment. GARAGE_DATA_DIR selects the data
// directory, GARAGE_LOG_LEVEL the logrus level.
func Load() *Config {
	// A missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	cfg := ForDir(getEnv("GARAGE_DATA_DIR", "data"))
	cfg.LogLevel = getEnv("GARAGE_LOG_LEVEL", "info")
	return cfg
}

// ForDir returns a configuration with every catalog file rooted at dir.
// Encoding and behavior are identical regardless of the directory; this
// is the test-mode redirection point.
func ForDir(dir string) *Config {
	return &Config{
		DataDir:       dir,
		LogLevel:      "info",
		CustomersFile: filepath.Join(dir, "customers.txt"),
		VehiclesFile:  filepath.Join(dir, "vehicles.txt"),
		ServicesFile:  filepath.Join(dir, "services.txt"),
		DiscountsFile: filepath.Join(dir, "discounts.txt"),
		HistoryFile:   filepath.Join(dir, "service_history.txt"),
	}
}

// EnsureDataDir creates the data directory when it does not exist yet.
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0o755)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
