// File: discovery.go
// Title: Configuration File Discovery
// Description: Locates the munits configuration file in the usual places
//              when no explicit path is given.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of config discovery
// - 2026-10-17 v0.2.0: munits search paths, user config directory

package config

import (
	"os"
	"path/filepath"

	mdwerror "github.com/msto63/munits/foundation/core/error"
	"github.com/msto63/munits/foundation/utils/filex"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the search setup used by the munits CLI
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "munits"))
	}
	paths = append(paths, "/etc/munits")

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"munits"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "MUNITS",
	}
}

// Discover finds and loads the first configuration file. When none exists
// and the file is not required, an empty configuration that still honours
// environment overrides is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	configPath, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return Empty(options.EnvPrefix), nil
	}

	cfg, err := LoadWithOptions(configPath, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, "found config file but failed to load it").
			WithOperation("config.Discover").
			WithDetail("configPath", configPath)
	}
	return cfg, nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, configPath := range candidates {
		if filex.IsFile(configPath) {
			return configPath, nil
		}
	}

	return "", mdwerror.New("configuration file not found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

// ListPossibleConfigFiles returns all candidate paths in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}
