// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/folio-tui/internal/portfolio"
	"github.com/jeranaias/folio-tui/internal/terminal"
	"github.com/jeranaias/folio-tui/internal/ui/app"
	"github.com/jeranaias/folio-tui/internal/ui/render"
)

var termTable string

// termCmd opens the terminal directly.
var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Open the portfolio terminal",
	Long: `Open the full-screen portfolio terminal.

Type "help" for the command list. Section commands such as "about" and
"projects" ask "(y/n)"; answering y jumps to that section of the page.
Esc returns to the page, Ctrl+C quits.

Use --table overlay for the smaller command set of the page overlay.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		if termTable != "" {
			if _, ok := terminal.ParseVariant(termTable); !ok {
				return errors.Newf("unknown table %q (want page or overlay)", termTable)
			}
		}
		v := rt.variant(termTable)
		if !IsTTY() {
			return runREPL(rt, cmd.InOrStdin(), cmd.OutOrStdout(), v)
		}
		return runTUI(rt, &v)
	},
}

func init() {
	termCmd.Flags().StringVarP(&termTable, "table", "t", "", "command table: page or overlay")
	rootCmd.AddCommand(termCmd)
}

// runTUI runs the Bubble Tea program. A non-nil start opens that terminal
// immediately and quits when it is closed.
func runTUI(rt *runtime, start *terminal.Variant) error {
	cfg := rt.cfg
	theme := rt.theme(os.Stdout)

	md, err := render.NewMarkdown(render.MarkdownStyle(cfg.UI.Theme, theme.NoColor()), cfg.UI.WordWrap)
	if err != nil {
		rt.logger.Warn("markdown renderer unavailable, showing plain text", zap.Error(err))
		md = nil
	}

	var updates <-chan portfolio.Update
	if cfg.Profile.Watch && cfg.Profile.Path != "" {
		w, err := portfolio.NewWatcher(cfg.Profile.Path, portfolio.DefaultDebounce, rt.logger)
		if err != nil {
			rt.logger.Warn("profile watch disabled", zap.Error(err))
		} else {
			defer w.Close()
			updates = w.Updates()
		}
	}

	dispatcher := app.NewDispatcher()
	model := app.New(app.Options{
		Config:      cfg,
		Profile:     rt.profile,
		Theme:       theme,
		Markdown:    md,
		Logger:      rt.logger,
		Dispatcher:  dispatcher,
		Updates:     updates,
		Terminal:    start,
		QuitOnClose: start != nil,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	dispatcher.Attach(p)
	defer dispatcher.Attach(nil)

	final, err := p.Run()
	if m, ok := final.(app.Model); ok {
		m.Close()
	}
	if err != nil {
		return errors.Wrap(err, "run terminal UI")
	}
	return nil
}
