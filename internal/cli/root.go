// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/folio-tui/internal/config"
	"github.com/jeranaias/folio-tui/internal/logging"
	"github.com/jeranaias/folio-tui/internal/portfolio"
	"github.com/jeranaias/folio-tui/internal/terminal"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// Build information, set by main.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global flags.
var (
	cfgFile     string
	profileFile string
	verbose     bool
	noColor     bool
)

// rootCmd opens the portfolio page.
var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "folio - a portfolio with a terminal inside",
	Long: `folio shows a developer portfolio in the terminal.

The page lists the about, projects, reviews and contact sections. Press "t"
to open a small command terminal over it, or run "folio term" for the
full-screen terminal page where commands like "about" offer to jump to a
section after a y/n confirmation.

The profile is a TOML file; "folio config init" writes an editable copy to
~/.folio/profile.toml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.close()
		if !IsTTY() {
			rt.logger.Debug("stdin is not a terminal, using line mode")
			return runREPL(rt, cmd.InOrStdin(), cmd.OutOrStdout(), rt.variant(""))
		}
		return runTUI(rt, nil)
	},
}

// exitCode ends the process with a status but no message.
type exitCode int

func (e exitCode) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

// Execute runs the command line. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var code exitCode
		if errors.As(err, &code) {
			os.Exit(int(code))
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "C", "", "config file (default is $HOME/.folio/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&profileFile, "profile", "p", "", "profile TOML file (default is the built-in profile)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colors")
}

// =============================================================================
// RUNTIME
// =============================================================================

// runtime is what every command that shows the portfolio needs.
type runtime struct {
	cfg     *config.Config
	profile *portfolio.Profile
	logger  *zap.Logger
}

// loadConfig reads the config file named by --config, or the default one,
// and applies the global flags.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadFromPath(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if profileFile != "" {
		cfg.Profile.Path = profileFile
	}
	if noColor {
		cfg.UI.NoColor = true
	}
	return cfg, nil
}

func loadRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Log, verbose)
	if err != nil {
		return nil, err
	}
	profile, err := portfolio.Load(cfg.Profile.Path)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	logger.Debug("runtime loaded",
		zap.String("command", cmd.Name()),
		zap.String("profile", cfg.Profile.Path),
		zap.String("version", Version))
	return &runtime{cfg: cfg, profile: profile, logger: logger}, nil
}

func (rt *runtime) close() {
	_ = rt.logger.Sync()
}

// variant resolves a --table flag, falling back to the config.
func (rt *runtime) variant(flag string) terminal.Variant {
	name := flag
	if name == "" {
		name = rt.cfg.Terminal.Table
	}
	v, _ := terminal.ParseVariant(name)
	return v
}

// theme builds styles for output to w.
func (rt *runtime) theme(w io.Writer) *styles.Theme {
	return styles.NewTheme(styles.Options{
		Mode:    rt.cfg.UI.Theme,
		NoColor: rt.cfg.UI.NoColor || !colorsEnabled(w),
		Output:  w,
	})
}
