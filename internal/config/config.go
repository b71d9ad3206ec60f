package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/igalhaddad/concurrent-url-downloader/internal/utils"
)

// Config holds all parameters for one download batch. Timeout fields are
// whole seconds on the wire, matching the JSON config format.
type Config struct {
	URLs                   []string `json:"urls" yaml:"urls"`
	OutputDirectory        string   `json:"outputDirectory" yaml:"outputDirectory"`
	MaxConcurrentDownloads int      `json:"maxConcurrentDownloads" yaml:"maxConcurrentDownloads"`
	MaxDownloadTimePerURL  int      `json:"maxDownloadTimePerUrl" yaml:"maxDownloadTimePerUrl"`
	ConnectTimeout         int      `json:"connectTimeout" yaml:"connectTimeout"`
	ReadTimeout            int      `json:"readTimeout" yaml:"readTimeout"`
	RetryAttempts          int      `json:"retryAttempts" yaml:"retryAttempts"`
	UserAgent              string   `json:"userAgent" yaml:"userAgent"`
}

// Default returns a config with every optional field populated. Load
// unmarshals on top of this value, so fields omitted from the file keep
// their defaults while explicit zeros are preserved.
func Default() Config {
	return Config{
		MaxConcurrentDownloads: 3,
		MaxDownloadTimePerURL:  30,
		ConnectTimeout:         30,
		ReadTimeout:            60,
		RetryAttempts:          3,
		UserAgent:              utils.ToolUserAgent,
	}
}

// Load reads a JSON or YAML config file, chosen by file extension.
func Load(path string) (*Config, error) {
	log := utils.GetLogger("config")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	log.Debug().Int("urls", len(cfg.URLs)).Str("outputDir", cfg.OutputDirectory).Msg("Configuration loaded")
	return &cfg, nil
}

// Validate checks every constraint the engine assumes. An empty URL list is
// valid and results in a no-op batch.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputDirectory) == "" {
		return fmt.Errorf("outputDirectory cannot be empty")
	}
	if c.MaxConcurrentDownloads <= 0 {
		return fmt.Errorf("maxConcurrentDownloads must be greater than 0")
	}
	if c.MaxConcurrentDownloads > 100 {
		return fmt.Errorf("maxConcurrentDownloads cannot exceed 100")
	}
	if c.MaxDownloadTimePerURL <= 0 {
		return fmt.Errorf("maxDownloadTimePerUrl must be greater than 0")
	}
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("connectTimeout must be greater than 0")
	}
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("readTimeout must be greater than 0")
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("retryAttempts cannot be negative")
	}
	if c.UserAgent == "" {
		c.UserAgent = utils.ToolUserAgent
	}
	return nil
}

func (c *Config) MaxDownloadTime() time.Duration {
	return time.Duration(c.MaxDownloadTimePerURL) * time.Second
}

func (c *Config) ConnectTimeoutDuration() time.Duration {
	return time.Duration(c.ConnectTimeout) * time.Second
}

func (c *Config) ReadTimeoutDuration() time.Duration {
	return time.Duration(c.ReadTimeout) * time.Second
}
