package app

import (
	"errors"
	"testing"

	"github.com/specialistvlad/vkcapgen/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		ManifestPath:      "lvp.hcl",
		RegistryLocations: []string{"vk.xml"},
		OutDeclarations:   "out/lvp_extensions.h",
		OutDefinitions:    "out/lvp_extensions.c",
	}
}

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name        string
		mutate      func(c *Config)
		missing     bool
		errContains string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "valid with policy", mutate: func(c *Config) { c.CeilingPolicy = "enabled_prefix" }},
		{name: "no manifest", mutate: func(c *Config) { c.ManifestPath = "" }, missing: true, errContains: "--manifest"},
		{name: "no registry", mutate: func(c *Config) { c.RegistryLocations = nil }, missing: true, errContains: "--xml"},
		{name: "blank registry", mutate: func(c *Config) { c.RegistryLocations = []string{""} }, missing: true},
		{name: "no header", mutate: func(c *Config) { c.OutDeclarations = "" }, missing: true, errContains: "--out-h"},
		{name: "no source", mutate: func(c *Config) { c.OutDefinitions = "" }, missing: true, errContains: "--out-c"},
		{name: "same output", mutate: func(c *Config) { c.OutDefinitions = "out/../out/lvp_extensions.h" }, errContains: "different files"},
		{name: "bad policy", mutate: func(c *Config) { c.CeilingPolicy = "newest" }, errContains: "newest"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			cfg := validConfig()
			tc.mutate(&cfg)

			// Act
			got, err := NewConfig(cfg)

			// Assert
			if tc.errContains == "" && !tc.missing {
				require.NoError(t, err)
				assert.Equal(t, cfg, *got)
				return
			}
			require.Error(t, err)
			assert.Nil(t, got)
			assert.Equal(t, tc.missing, isMissing(err))
			if tc.errContains != "" {
				assert.Contains(t, err.Error(), tc.errContains)
			}
		})
	}
}

func TestNewSnapshotConfig(t *testing.T) {
	_, err := NewSnapshotConfig(Config{RegistryLocations: []string{"vk.xml"}})
	require.ErrorIs(t, err, config.ErrMissingRequiredInput)
	assert.Contains(t, err.Error(), "--out")

	_, err = NewSnapshotConfig(Config{SnapshotPath: "vk.yaml"})
	require.ErrorIs(t, err, config.ErrMissingRequiredInput)

	got, err := NewSnapshotConfig(Config{RegistryLocations: []string{"vk.xml"}, SnapshotPath: "vk.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "vk.yaml", got.SnapshotPath)
}

func isMissing(err error) bool {
	var missing *config.MissingRequiredInput
	return err != nil && errors.As(err, &missing)
}
