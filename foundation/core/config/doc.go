// Package config loads jcal settings from TOML or YAML files.
//
// Package: config
// Title: jcal Configuration
// Description: Reads a configuration file (TOML via BurntSushi/toml, YAML via
//              gopkg.in/yaml.v3), merges defaults, and resolves keys with dot
//              notation. Every key can be overridden by an environment
//              variable: with prefix "JCAL", "log.level" becomes JCAL_LOG_LEVEL.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-08-14 v0.2.0: Removed file watching and struct binding, deep default merge
//
// Example file:
//
//   zone   = "Asia/Tehran"
//   layout = "%Y/%m/%d %H:%M:%S"
//
//   [log]
//   level  = "debug"
//   format = "logfmt"
package config
