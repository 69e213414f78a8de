// Package config loads the company profile and document settings from an
// optional YAML file plus environment variables.
package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	CompanyName    string `yaml:"company_name" env:"CATERQUOTE_COMPANY_NAME" env-default:"Shahi Caterers"`
	CompanyAddress string `yaml:"company_address" env:"CATERQUOTE_COMPANY_ADDRESS" env-default:""`
	CompanyPhone   string `yaml:"company_phone" env:"CATERQUOTE_COMPANY_PHONE" env-default:""`

	// CacheDir is where generated quotation documents are written.
	// Empty means the user cache directory.
	CacheDir string `yaml:"cache_dir" env:"CATERQUOTE_CACHE_DIR" env-default:""`
}

// Load reads the config file at path when it exists, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad loads the config from CATERQUOTE_CONFIG (default ./config.yml)
// and exits on failure.
func MustLoad() *Config {
	path := os.Getenv("CATERQUOTE_CONFIG")
	if path == "" {
		path = "./config.yml"
	}
	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("cannot read config: %v", err)
	}
	return cfg
}

// QuoteCacheDir resolves the directory for generated documents: the
// configured CacheDir, or <user cache dir>/caterquote.
func (c *Config) QuoteCacheDir() string {
	if c.CacheDir != "" {
		return c.CacheDir
	}
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "caterquote")
}
