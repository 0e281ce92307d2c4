// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/muesli/termenv"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/folio-tui/internal/portfolio"
	"github.com/jeranaias/folio-tui/internal/terminal"
	"github.com/jeranaias/folio-tui/internal/ui/render"
	"github.com/jeranaias/folio-tui/internal/ui/term"
)

var replTable string

// replCmd runs the terminal in line mode.
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Run the portfolio terminal in line mode",
	Long: `Run the portfolio terminal as a line-mode prompt.

Up/Down recall earlier commands and Tab completes a command name when only
one matches. A confirmed section jump prints that section of the page.
Ctrl+C or Ctrl+D leaves.

Input may be piped:
  printf 'whoami\nls\n' | folio repl`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.close()
		if replTable != "" {
			if _, ok := terminal.ParseVariant(replTable); !ok {
				return errors.Newf("unknown table %q (want page or overlay)", replTable)
			}
		}
		return runREPL(rt, cmd.InOrStdin(), cmd.OutOrStdout(), rt.variant(replTable))
	},
}

func init() {
	replCmd.Flags().StringVarP(&replTable, "table", "t", "", "command table: page or overlay")
	rootCmd.AddCommand(replCmd)
}

// =============================================================================
// SESSION
// =============================================================================

// replSession runs terminal commands against a writer. Confirmed
// navigation prints the target section.
type replSession struct {
	interp  *terminal.Interpreter
	render  render.Terminal
	md      *render.Markdown
	profile *portfolio.Profile
	variant terminal.Variant
	delay   time.Duration

	outMu sync.Mutex
	out   io.Writer

	// navigated receives one value per confirmed action that fired
	navigated chan portfolio.Section
	closed    bool
}

func newREPLSession(rt *runtime, out io.Writer, v terminal.Variant, sched terminal.Scheduler) *replSession {
	theme := rt.theme(out)
	width := GetTerminalWidth(out)

	md, err := render.NewMarkdown(render.MarkdownStyle(rt.cfg.UI.Theme, theme.NoColor()), width)
	if err != nil {
		rt.logger.Warn("markdown renderer unavailable", zap.Error(err))
	}

	host := rt.cfg.Terminal.Host
	if host == "" {
		host = term.DefaultHost
	}

	s := &replSession{
		profile: rt.profile,
		variant: v,
		md:      md,
		delay:   rt.cfg.Terminal.ConfirmDelay(),
		out:     out,
		render: render.Terminal{
			Styles:    theme.Terminal(v == terminal.VariantOverlay),
			Prompt:    terminal.PromptUser(rt.profile, v) + "@" + host + ":~$",
			CodeStyle: rt.cfg.UI.CodeStyle,
			NoColor:   theme.NoColor(),
			Width:     width,
		},
		navigated: make(chan portfolio.Section, 4),
	}

	table := terminal.NewCatalog(rt.profile, terminal.CatalogOptions{
		Variant:   v,
		Navigator: terminal.NavigatorFunc(s.navigate),
	})
	s.interp = terminal.New(table, terminal.Options{
		ConfirmDelay: s.delay,
		Scheduler:    sched,
		Logger:       rt.logger,
		OnClose:      func() { s.closed = true },
	})
	return s
}

// navigate runs on the scheduler's goroutine.
func (s *replSession) navigate(section portfolio.Section) {
	s.print(s.md.Render(s.profile.SectionMarkdown(section)))
	select {
	case s.navigated <- section:
	default:
	}
}

func (s *replSession) print(text string) {
	s.outMu.Lock()
	defer s.outMu.Unlock()
	fmt.Fprintln(s.out, text)
}

// welcome prints the banner.
func (s *replSession) welcome() {
	s.print(s.render.Banner(terminal.Welcome(s.profile, s.variant)))
}

// handle submits one line and prints its response. It returns the result
// so the caller can react to signals.
func (s *replSession) handle(line string) terminal.Result {
	res := s.interp.Submit(line)
	switch {
	case res.Signal == terminal.SignalClear:
		return res
	case res.Response.IsEmpty():
		return res
	}
	s.print(s.render.Content(res.Response, !res.Known))
	if res.Scheduled {
		s.wait()
	}
	return res
}

// wait blocks until the confirmed action has printed, so its output does
// not interleave with the next prompt.
func (s *replSession) wait() {
	select {
	case <-s.navigated:
	case <-time.After(s.delay + time.Second):
	}
}

func (s *replSession) complete(line string) []string {
	if done := s.interp.Complete(line); done != line {
		return []string{done}
	}
	return nil
}

func (s *replSession) close() {
	s.interp.Close()
}

// =============================================================================
// LOOP
// =============================================================================

// runREPL reads lines with liner when stdin is a terminal and from in
// otherwise.
func runREPL(rt *runtime, in io.Reader, out io.Writer, v terminal.Variant) error {
	s := newREPLSession(rt, out, v, nil)
	defer s.close()

	if !IsTTY() {
		return s.runPlain(in)
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetTabCompletionStyle(liner.TabCircular)
	line.SetCompleter(s.complete)

	if rt.cfg.Terminal.Welcome {
		s.welcome()
	}
	prompt := s.render.Prompt + " "
	for !s.closed {
		input, err := line.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return errors.Wrap(err, "read command")
		}

		res := s.handle(input)
		recordLine(line, input, res.Signal)
		if res.Signal == terminal.SignalClear && colorsEnabled(out) {
			termenv.NewOutput(out).ClearScreen()
		}
	}
	return nil
}

// lineHistory is the part of *liner.State that backs Up/Down recall.
type lineHistory interface {
	AppendHistory(item string)
	ClearHistory()
}

// recordLine mirrors the interpreter's history into the line editor:
// clear empties it, any other non-empty line is appended.
func recordLine(h lineHistory, input string, sig terminal.Signal) {
	switch {
	case sig == terminal.SignalClear:
		h.ClearHistory()
	case strings.TrimSpace(input) != "":
		h.AppendHistory(input)
	}
}

// runPlain reads one command per line until EOF or exit. CRLF line
// endings are accepted.
func (s *replSession) runPlain(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for !s.closed && scanner.Scan() {
		input := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(input) == "" {
			continue
		}
		s.print(s.render.PromptLine(input))
		s.handle(input)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read commands")
	}
	return nil
}
