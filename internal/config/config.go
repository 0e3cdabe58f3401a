// Package config loads gomqlet's JSON configuration file and watches the
// introspection schema file on disk for changes, the way the teacher's
// internal/config and internal/dev packages handle okra.json and source
// file watching respectively.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Config is the on-disk JSON configuration file: the GraphQL endpoint and
// its extra headers, the paths to the cached introspection schema and an
// optional variables file, an optional word-list override for
// random_word, and the log level.
type Config struct {
	Endpoint      string            `json:"endpoint"`
	Headers       map[string]string `json:"headers"`
	SchemaPath    string            `json:"schemaPath"`
	VariablesPath string            `json:"variablesPath"`
	WordListPath  string            `json:"wordListPath"`
	LogLevel      string            `json:"logLevel"`
}

// LoadConfigFromPath reads and decodes path, filling in defaults for any
// field the file omits, mirroring the teacher's LoadConfigFromPath.
func LoadConfigFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing config file: %w", err)
	}

	if cfg.SchemaPath == "" {
		cfg.SchemaPath = "./schema.json"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return &cfg, nil
}

// ReadVariables loads the JSON variables source for `variable::` magic
// values (§6). A Config with no VariablesPath has no variables source at
// all, which is not an error — it just means `variable::` commands fail
// at expansion time instead of at startup.
func (c *Config) ReadVariables() ([]byte, error) {
	if c.VariablesPath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(c.VariablesPath)
	if err != nil {
		return nil, fmt.Errorf("config: reading variables file: %w", err)
	}
	return data, nil
}

// ReadWordList loads a custom random_word dictionary (whitespace
// separated). A Config with no WordListPath returns a nil slice so
// callers fall back to the magic package's embedded default.
func (c *Config) ReadWordList() ([]string, error) {
	if c.WordListPath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(c.WordListPath)
	if err != nil {
		return nil, fmt.Errorf("config: reading word list file: %w", err)
	}
	return strings.Fields(string(data)), nil
}
