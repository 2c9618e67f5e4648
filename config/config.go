// Package config loads the collector's multichain configuration file: the
// list of chains to poll, each with its JSON-RPC endpoint and the
// directory its metadata snapshots are persisted under.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Chain describes one collector task.
type Chain struct {
	// ChainName identifies the chain and is matched against the spec_name
	// reported by state_getRuntimeVersion; a mismatch aborts the
	// collector for this chain.
	ChainName string `yaml:"chain_name"`
	// Endpoint is the chain's JSON-RPC HTTP endpoint.
	Endpoint string `yaml:"endpoint"`
	// Directory is the base directory for this chain's sidecar files and
	// collection state; the collector writes them into a subdirectory
	// named after ChainName. Defaults to the process working directory.
	Directory string `yaml:"directory"`
}

// Config is the top-level collector configuration: one entry per chain to
// poll.
type Config struct {
	Chains []Chain `yaml:"chains"`
}

// Load reads and parses the YAML config file at path, defaulting each
// chain's Directory to the process working directory and validating that
// every entry carries a chain_name and endpoint.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("config: resolving working directory: %w", err)
	}

	for i, c := range cfg.Chains {
		if c.ChainName == "" {
			return Config{}, fmt.Errorf("config: chains[%d]: chain_name is required", i)
		}
		if c.Endpoint == "" {
			return Config{}, fmt.Errorf("config: chains[%d]: endpoint is required", i)
		}
		if c.Directory == "" {
			cfg.Chains[i].Directory = cwd
		}
	}

	return cfg, nil
}
