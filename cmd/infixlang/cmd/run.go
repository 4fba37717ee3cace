package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/a-rahimi/infixlang/internal/repl"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run an infixlang script or expression",
	Long: `Evaluate an infixlang script line by line, or an inline expression.

Each line's value is printed to stdout; errors go to stderr and do not stop
the script, but any failed line makes the exit status non-zero.

Examples:
  # Run a script file
  infixlang run script.ifx

  # Evaluate an inline expression
  infixlang run -e "a = 2*3, a + 1"

  # Run with AST dump (for debugging)
  infixlang run --dump-ast script.ifx`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST of each line (for debugging)")
}

// readInput resolves the input source shared by run, lex and parse: either
// the -e flag or a file argument.
func readInput(args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		return string(content), filename, nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}

func runScript(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Running: %s\n", filename)
	}

	if dumpAST {
		if err := dumpInputAST(os.Stdout, input); err != nil {
			return err
		}
	}

	session := repl.NewSession(os.Stdout, os.Stderr)
	return session.Run(strings.NewReader(input))
}
