// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/jeranaias/folio-tui/internal/terminal"
	"github.com/jeranaias/folio-tui/internal/ui/render"
)

var askTable string

// askCmd runs one terminal command.
var askCmd = &cobra.Command{
	Use:   "ask <command...>",
	Short: "Run one terminal command and print the response",
	Long: `Run a single terminal command and print its response.

Examples:
  folio ask whoami
  folio ask cat contact.json
  folio ask --table overlay help

Output is rendered as markdown on a terminal and as plain text when piped.
An unknown command prints the "command not found" line and exits with
status 1.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.close()
		if askTable != "" {
			if _, ok := terminal.ParseVariant(askTable); !ok {
				return errors.Newf("unknown table %q (want page or overlay)", askTable)
			}
		}
		return runAsk(rt, cmd.OutOrStdout(), rt.variant(askTable), strings.Join(args, " "))
	},
}

func init() {
	askCmd.Flags().StringVarP(&askTable, "table", "t", "", "command table: page or overlay")
	rootCmd.AddCommand(askCmd)
}

// runAsk submits line to a fresh session. Confirmation prompts are printed
// but never acted on: the session ends with the command.
func runAsk(rt *runtime, out io.Writer, v terminal.Variant, line string) error {
	table := terminal.NewCatalog(rt.profile, terminal.CatalogOptions{Variant: v})
	interp := terminal.New(table, terminal.Options{Logger: rt.logger})
	defer interp.Close()

	res := interp.Submit(line)
	if !res.Response.IsEmpty() {
		fmt.Fprintln(out, formatResponse(rt, out, res.Response))
	}
	if !res.Known {
		return exitCode(1)
	}
	return nil
}

// formatResponse renders markdown on a color terminal and plain text
// otherwise.
func formatResponse(rt *runtime, out io.Writer, c terminal.Content) string {
	if rt.cfg.UI.NoColor || !colorsEnabled(out) {
		return c.String()
	}
	md, err := render.NewMarkdown(render.MarkdownStyle(rt.cfg.UI.Theme, false), GetTerminalWidth(out))
	if err != nil {
		return c.String()
	}
	return strings.TrimRight(md.Render(c.Markdown()), "\n")
}
