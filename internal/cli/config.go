// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/jeranaias/folio-tui/internal/config"
	"github.com/jeranaias/folio-tui/internal/portfolio"
	"github.com/jeranaias/folio-tui/internal/util"
)

// keyColumn is the width of the key column in "config get".
const keyColumn = 26

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and edit the folio configuration",
	Long: `Show and edit ~/.folio/config.toml.

Examples:
  folio config                              Show the effective configuration
  folio config path                         Show where files live
  folio config init                         Write config.toml and profile.toml
  folio config get terminal.confirm_delay_ms
  folio config set ui.theme dark`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow(cmd.OutOrStdout())
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow(cmd.OutOrStdout())
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config and profile file locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigPath(cmd.OutOrStdout())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file and an editable copy of the built-in profile",
	Long: `Write ~/.folio/config.toml and ~/.folio/profile.toml.

The profile is a copy of the built-in one; edit it and folio picks up the
changes while running. Existing files are kept unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigInit(cmd.OutOrStdout(), configForce)
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one configuration value, or all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := ""
		if len(args) == 1 {
			key = args[0]
		}
		return runConfigGet(cmd.OutOrStdout(), key)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value in the config file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigSet(cmd.OutOrStdout(), args[0], args[1])
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite existing files")
	configCmd.AddCommand(configShowCmd, configPathCmd, configInitCmd, configGetCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// configFilePath is --config or the default location.
func configFilePath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.ConfigPath()
}

func runConfigShow(out io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fmt.Fprint(out, cfg.String())
	return nil
}

func runConfigPath(out io.Writer) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}
	profile, err := config.ProfilePath()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s%s\n", util.PadRight("config", 9), path)
	fmt.Fprintf(out, "%s%s\n", util.PadRight("profile", 9), profile)
	return nil
}

func runConfigInit(out io.Writer, force bool) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}
	profilePath, err := config.ProfilePath()
	if err != nil {
		return err
	}

	if force {
		if err := util.AtomicWriteFile(profilePath, portfolio.DefaultTOML(), 0644); err != nil {
			return errors.Wrap(err, "write profile")
		}
		fmt.Fprintf(out, "wrote %s\n", profilePath)
	} else {
		written, err := util.WriteFileIfMissing(profilePath, portfolio.DefaultTOML(), 0644)
		if err != nil {
			return errors.Wrap(err, "write profile")
		}
		if written {
			fmt.Fprintf(out, "wrote %s\n", profilePath)
		} else {
			fmt.Fprintf(out, "kept %s\n", profilePath)
		}
	}

	if _, statErr := os.Stat(path); statErr == nil && !force {
		fmt.Fprintf(out, "kept %s\n", path)
		return nil
	}
	cfg := config.Default()
	cfg.Profile.Path = profilePath
	if err := config.SaveTOML(cfg, path); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s\n", path)
	return nil
}

func runConfigGet(out io.Writer, key string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if key != "" {
		v, err := cfg.Get(key)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, v)
		return nil
	}
	for _, k := range config.Keys() {
		v, err := cfg.Get(k)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s%v\n", util.PadRight(k, keyColumn), v)
	}
	return nil
}

// runConfigSet edits the file itself, so environment overrides are not
// written back.
func runConfigSet(out io.Writer, key, value string) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	cfg := config.Default()
	if _, statErr := os.Stat(path); statErr == nil {
		cfg = &config.Config{}
		if err := config.LoadTOML(cfg, path); err != nil {
			return errors.Wrapf(err, "load config %s", path)
		}
	}
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.SaveTOML(cfg, path); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s = %s\n", key, value)
	return nil
}
