package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const configFile = "config.json"

// EnvAPIKey overrides the stored API key when set
const EnvAPIKey = "GEMINI_API_KEY"

// Config keys
const (
	KeyAPIKey          = "api_key"
	KeyPriorityDefault = "priority_default"
	KeyDateFormat      = "date_format"
)

func defaults() map[string]string {
	return map[string]string{
		KeyAPIKey:          "",
		KeyPriorityDefault: "medium",
		KeyDateFormat:      "2006-01-02 15:04:05",
	}
}

// Config is an explicit handle over the settings file. Commands load
// it once and pass it down; nothing reads the file behind its back.
type Config struct {
	baseDir string
	values  map[string]string
}

// Load reads the config from disk. A missing or unparseable file is
// replaced with defaults.
func Load(baseDir string) (*Config, error) {
	cfg := &Config{baseDir: baseDir, values: defaults()}
	configPath := filepath.Join(baseDir, configFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, cfg.Save()
		}
		return nil, err
	}

	var stored map[string]string
	if err := json.Unmarshal(data, &stored); err != nil {
		// Corrupt file: recreate with defaults
		return cfg, cfg.Save()
	}

	for k, v := range stored {
		cfg.values[k] = v
	}
	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	if err := os.MkdirAll(c.baseDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c.values, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(c.baseDir, configFile), data, 0644)
}

// Get returns the value for key, or def when unset
func (c *Config) Get(key, def string) string {
	if v, ok := c.values[key]; ok && v != "" {
		return v
	}
	return def
}

// Set stores a value and persists it
func (c *Config) Set(key, value string) error {
	c.values[key] = value
	return c.Save()
}

// APIKey returns the Gemini credential. The environment variable
// takes precedence over the stored value; empty means unconfigured.
func (c *Config) APIKey() string {
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key
	}
	return c.values[KeyAPIKey]
}
