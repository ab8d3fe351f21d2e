package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config contains runtime settings for the skillnet server
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 8080

	// DatasetPath points at the skills CSV loaded on startup.
	DatasetPath string

	// AggregateWorkers > 1 enables partitioned aggregation.
	AggregateWorkers int

	Neo4j struct {
		URI      string
		Username string
		Password string
	} // optional; graph export disabled when unset

	Sheets struct {
		CredentialsPath string
	} // optional; report export disabled when unset
}

// Load populates config from environment variables
func Load() (Config, error) {
	cfg := Config{
		LogLevel:         "info",
		Host:             "0.0.0.0",
		Port:             "8080",
		AggregateWorkers: 1,
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("MCP_HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	cfg.DatasetPath = os.Getenv("DATASET_PATH")

	if v := os.Getenv("AGGREGATE_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("AGGREGATE_WORKERS must be a positive integer, got %q", v)
		}
		cfg.AggregateWorkers = n
	}

	cfg.Neo4j.URI = os.Getenv("NEO4J_URI")
	cfg.Neo4j.Username = os.Getenv("NEO4J_USERNAME")
	cfg.Neo4j.Password = os.Getenv("NEO4J_PASSWORD")

	cfg.Sheets.CredentialsPath = os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH")

	var missingVars []string

	if cfg.DatasetPath == "" {
		missingVars = append(missingVars, "DATASET_PATH")
	}

	// Neo4j is a feature gate: all three vars or none.
	if cfg.Neo4jConfigured() {
		if cfg.Neo4j.URI == "" {
			missingVars = append(missingVars, "NEO4J_URI")
		}
		if cfg.Neo4j.Username == "" {
			missingVars = append(missingVars, "NEO4J_USERNAME")
		}
		if cfg.Neo4j.Password == "" {
			missingVars = append(missingVars, "NEO4J_PASSWORD")
		}
	}

	if len(missingVars) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	return cfg, nil
}

// Neo4jConfigured reports whether any Neo4j setting was provided
func (c Config) Neo4jConfigured() bool {
	return c.Neo4j.URI != "" || c.Neo4j.Username != "" || c.Neo4j.Password != ""
}

// SheetsConfigured reports whether report export credentials were provided
func (c Config) SheetsConfigured() bool {
	return c.Sheets.CredentialsPath != ""
}
