// Package config loads the TOML configuration file the server runs from.
// Its location is read from JOTOBA_CONFIG, falling back to
// ./data/config.toml -- a single, explicit entry point with sane defaults
// rather than a global singleton.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

const (
	envVar      = "JOTOBA_CONFIG"
	defaultPath = "./data/config.toml"
)

// Server holds the server.* TOML table.
type Server struct {
	ListenAddress string `toml:"listen_address"`
	HTMLFiles     string `toml:"html_files"`
	StorageData   string `toml:"storage_data"`
	RadicalMap    string `toml:"radical_map"`
	Sentences     string `toml:"sentences"`
}

// Search holds the search.* TOML table.
type Search struct {
	SuggestionTimeoutMS  int `toml:"suggestion_timeout_ms"`
	IndexesSource        string `toml:"indexes_source"`
	ReportQueriesAfterMS int `toml:"report_queries_after_ms"`
	SearchTimeoutMS      int `toml:"search_timeout_ms"`
}

// Config is the parsed TOML configuration document.
type Config struct {
	Server Server `toml:"server"`
	Search Search `toml:"search"`
}

// Default returns a Config with sane, local values that need no external
// services to run.
func Default() Config {
	return Config{
		Server: Server{
			ListenAddress: "127.0.0.1:8080",
			HTMLFiles:     "./html",
			StorageData:   "./data/storage",
			RadicalMap:    "./data/radical_map",
			Sentences:     "./data/sentences.bin",
		},
		Search: Search{
			SuggestionTimeoutMS:  100,
			IndexesSource:        "./data/indexes",
			ReportQueriesAfterMS: 400,
			SearchTimeoutMS:      5000,
		},
	}
}

// Path resolves the configuration file location: the JOTOBA_CONFIG env
// var, falling back to ./data/config.toml.
func Path() string {
	if p := os.Getenv(envVar); p != "" {
		return p
	}
	return defaultPath
}

// Load reads and parses the configuration file at Path(). A missing file is
// not an error -- it returns Default() -- but a malformed file is.
func Load() (Config, error) {
	cfg := Default()
	path := Path()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
