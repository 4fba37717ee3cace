package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/a-rahimi/infixlang/internal/repl"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive infixlang session",
	Long: `Read-eval-print loop: one logical line per prompt, evaluated against a
running context that persists across lines. Blank lines are ignored. Exit
with Ctrl-D.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">> ",
		HistoryFile:     historyFilePath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize line reader: %w", err)
	}
	defer rl.Close()

	fmt.Printf("infixlang %s\n", Version)

	session := repl.NewSession(os.Stdout, os.Stderr)
	for {
		line, err := rl.Readline()
		switch err {
		case nil:
			// Per-line errors are already reported on stderr and never
			// end the session.
			_ = session.EvalLine(line)
		case readline.ErrInterrupt:
			// Ctrl-C discards the current line.
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
	}
}

// historyFilePath returns a per-user history file, or "" (history disabled)
// when no home directory is available.
func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".infixlang_history")
}
