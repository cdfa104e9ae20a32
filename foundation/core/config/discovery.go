// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Finds the first existing configuration file across a list of
//              directories, base names and extensions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2025-08-14 v0.2.0: Optional discovery falls back to Empty

package config

import (
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/jcal/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string               // Directories to search for config files
	Filenames  []string               // Base filenames to look for (without extension)
	Extensions []string               // File extensions to try
	EnvPrefix  string                 // Environment variable prefix for overrides
	Defaults   map[string]interface{} // Defaults applied to whatever is found
	Required   bool                   // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the search path used by the jcal CLI
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "jcal"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"jcal"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "JCAL",
	}
}

// FindConfigFile returns the first existing candidate file, or "" if none
func FindConfigFile(options DiscoveryOptions) string {
	for _, candidate := range candidates(options) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// Discover loads the first configuration file found. When nothing is found
// and the file is optional, an Empty config carrying defaults is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	path := FindConfigFile(options)
	if path == "" {
		if options.Required {
			searched := candidates(options)
			return nil, mdwerror.New("no configuration file found in: "+strings.Join(searched, ", ")).
				WithCode(mdwerror.CodeMissingConfig).
				WithOperation("config.Discover").
				WithDetail("searchPaths", searched)
		}
		return Empty(options.EnvPrefix, options.Defaults), nil
	}

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, "found config file "+path+" but failed to load").
			WithOperation("config.Discover").
			WithDetail("configPath", path)
	}
	return cfg, nil
}

func candidates(options DiscoveryOptions) []string {
	exts := options.Extensions
	if len(exts) == 0 {
		exts = []string{".toml", ".yaml", ".yml"}
	}
	var out []string
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range exts {
				out = append(out, filepath.Join(dir, name+ext))
			}
		}
	}
	return out
}
