package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"numfield/internal/field"
	"numfield/internal/numeric"
)

var simulateInitial string

// simulateCmd replays a keystroke script against a bound field
var simulateCmd = &cobra.Command{
	Use:   "simulate [script]",
	Short: "Replay keystrokes through a bound field and show each state",
	Long: `Drives an in-memory text field through the same key, paste and input
sequence a live control sees and prints the text and caret after every
event. '|' marks the caret.

Script syntax:
  plain characters           typed one at a time
  <backspace> <delete> <left> <right> <home> <end>
  <ctrl+a>                   select all
  <paste:TEXT>               paste TEXT over the selection
  <set:TEXT>                 programmatic value assignment
  <select:S-E>               select characters S..E
  <<                         a literal '<'

Example:
  numfield simulate '1234<left><left><backspace>'
  numfield simulate -d -m 2 '12.3<paste:4567>'`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	addNumericFlags(simulateCmd)
	simulateCmd.Flags().StringVar(&simulateInitial, "initial", "", "Initial field value (caret at end)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	grammar := numericOverrides(cmd, cfg.Sanitizer.Numeric())

	events, err := field.ParseScript(args[0])
	if err != nil {
		return fmt.Errorf("bad script: %w", err)
	}

	ctl := field.NewMemory(simulateInitial)
	binder, err := field.Bind(ctl, grammar)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-18s %s\n", "(start)", caretView(binder.State()))
	for _, step := range field.Replay(binder, ctl, events) {
		line := fmt.Sprintf("%-18s %s", step.Event, caretView(step.State))
		if step.Suppressed {
			line += "   (suppressed)"
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

// caretView renders st with '|' at the caret.
func caretView(st numeric.State) string {
	runes := []rune(st.Text)
	pos := min(max(st.Cursor, 0), len(runes))
	return string(runes[:pos]) + "|" + string(runes[pos:])
}
