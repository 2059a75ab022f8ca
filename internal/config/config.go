package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that overrides the config
// file location.
const EnvConfigPath = "STOREFRONT_CONFIG"

// Config holds the runtime settings. Every field has a working default so
// the application runs with no config file at all.
type Config struct {
	DataDir      string        `yaml:"data_dir"`
	CatalogFile  string        `yaml:"catalog_file"`
	CustomerFile string        `yaml:"customer_file"`
	UserFile     string        `yaml:"user_file"`
	SettleDelay  time.Duration `yaml:"settle_delay"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DataDir:      "data",
		CatalogFile:  "inventory.txt",
		CustomerFile: "customers.txt",
		UserFile:     "users.txt",
		SettleDelay:  time.Second,
	}
}

// Load reads the YAML config at path, falling back to defaults for absent
// fields. An empty path consults EnvConfigPath; if that is unset too, the
// defaults are returned. A named file that does not exist is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// CatalogPath returns the catalog file location.
func (c *Config) CatalogPath() string {
	return filepath.Join(c.DataDir, c.CatalogFile)
}

// CustomerPath returns the customer file location.
func (c *Config) CustomerPath() string {
	return filepath.Join(c.DataDir, c.CustomerFile)
}

// UserPath returns the credential file location.
func (c *Config) UserPath() string {
	return filepath.Join(c.DataDir, c.UserFile)
}
