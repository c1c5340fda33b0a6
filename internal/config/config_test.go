package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForDir(t *testing.T) {
	cfg := ForDir("testdata")
	assert.Equal(t, "testdata", cfg.DataDir)
	assert.Equal(t, filepath.Join("testdata", "customers.txt"), cfg.CustomersFile)
	assert.Equal(t, filepath.Join("testdata", "vehicles.txt"), cfg.VehiclesFile)
	assert.Equal(t, filepath.Join("testdata", "services.txt"), cfg.ServicesFile)
	assert.Equal(t, filepath.Join("testdata", "discounts.txt"), cfg.DiscountsFile)
	assert.Equal(t, filepath.Join("testdata", "service_history.txt"), cfg.HistoryFile)
}

func TestLoadReadsEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GARAGE_DATA_DIR", dir)
	t.Setenv("GARAGE_LOG_LEVEL", "debug")

	cfg := Load()
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, filepath.Join(dir, "customers.txt"), cfg.CustomersFile)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GARAGE_DATA_DIR", "")
	t.Setenv("GARAGE_LOG_LEVEL", "")

	cfg := Load()
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "info", cfg.LogLevel)
}
