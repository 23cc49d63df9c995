package app

import (
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/vkcapgen/internal/config"
	"github.com/specialistvlad/vkcapgen/internal/ledger"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath      string   // .hcl file or directory
	RegistryLocations []string // vk.xml files, snapshots or globs of either

	OutDeclarations string // generated header
	OutDefinitions  string // generated source
	SnapshotPath    string // snapshot subcommand output

	// Prefix and CeilingPolicy override the manifest when set.
	Prefix        string
	CeilingPolicy string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a configuration for the generate command.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, &config.MissingRequiredInput{Input: "manifest", Detail: "--manifest is required"}
	}
	if err := requireRegistry(cfg); err != nil {
		return nil, err
	}
	if cfg.OutDeclarations == "" {
		return nil, &config.MissingRequiredInput{Input: "declarations output", Detail: "--out-h is required"}
	}
	if cfg.OutDefinitions == "" {
		return nil, &config.MissingRequiredInput{Input: "definitions output", Detail: "--out-c is required"}
	}
	if filepath.Clean(cfg.OutDeclarations) == filepath.Clean(cfg.OutDefinitions) {
		return nil, fmt.Errorf("--out-h and --out-c must name different files, both are %s", cfg.OutDeclarations)
	}
	if _, err := ledger.ParseCeilingPolicy(cfg.CeilingPolicy); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewSnapshotConfig validates a configuration for the snapshot command.
func NewSnapshotConfig(cfg Config) (*Config, error) {
	if err := requireRegistry(cfg); err != nil {
		return nil, err
	}
	if cfg.SnapshotPath == "" {
		return nil, &config.MissingRequiredInput{Input: "snapshot output", Detail: "--out is required"}
	}
	return &cfg, nil
}

func requireRegistry(cfg Config) error {
	if len(cfg.RegistryLocations) == 0 {
		return &config.MissingRequiredInput{Input: "registry source", Detail: "at least one --xml or --registry is required"}
	}
	for _, location := range cfg.RegistryLocations {
		if location == "" {
			return &config.MissingRequiredInput{Input: "registry source", Detail: "empty location"}
		}
	}
	return nil
}
