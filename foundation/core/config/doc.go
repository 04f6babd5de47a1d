// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package documentation for the config module.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-17 v0.2.0: fsnotify watching, typed Decode for catalogs

/*
Package config loads TOML and YAML configuration for mUnits.

Values are read with dotted keys and can be overridden from the
environment (MUNITS_CATALOG_PATH overrides catalog.path when the prefix is
"MUNITS"):

	cfg, err := config.Load("munits.toml")
	if err != nil {
		return err
	}
	locale := cfg.GetString("locale", "en")

Structured files such as unit catalogs are decoded straight into structs:

	var file catalogFile
	err := config.Decode(content, config.DetectFormat(path), &file)

WatchFile and Config.Watch follow a file through fsnotify until the
context is cancelled.
*/
package config
