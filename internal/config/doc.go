// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for folio.
//
// Configuration is TOML with built-in defaults, environment variable
// overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - TerminalConfig: Prompt, command table and confirmation delay
//   - ProfileConfig: Where the portfolio profile comes from
//   - UIConfig: Theme and color settings
//   - LogConfig: Log file and level
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Command-line flags (applied by the caller)
//   - Environment variables (FOLIO_*)
//   - ~/.folio/config.toml
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	delay := cfg.Terminal.ConfirmDelay()
package config
