package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/a-rahimi/infixlang/internal/errors"
	"github.com/a-rahimi/infixlang/internal/lexer"
	"github.com/a-rahimi/infixlang/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse an infixlang file or expression and print the AST",
	Long: `Parse infixlang source and print the resulting parse tree, one line of
input per tree. Useful for debugging the grammar and checking precedence.

Examples:
  # Parse a script file
  infixlang parse script.ifx

  # Parse an inline expression
  infixlang parse -e "2 + 3 * 4"`,
	Args: cobra.MaximumNArgs(1),
	RunE: parseScript,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func parseScript(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	if err := dumpInputAST(os.Stdout, input); err != nil {
		reportSourceError(err, input, filename)
		return fmt.Errorf("parsing failed")
	}
	return nil
}

// dumpInputAST parses each non-blank line of input and prints its tree.
func dumpInputAST(out io.Writer, input string) error {
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		tokens, err := lexer.Tokenize(line)
		if err != nil {
			return err
		}
		seq, err := parser.Parse(tokens)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, seq)
	}
	return scanner.Err()
}

// reportSourceError prints a classified lex or parse error with source
// context when it carries a position, or plainly otherwise.
func reportSourceError(err error, input, filename string) {
	var pos lexer.Position
	switch err := err.(type) {
	case *lexer.UnrecognizedError:
		pos = err.Pos
	case *parser.NoRuleMatchedError:
		pos = err.Pos
	default:
		fmt.Fprintln(os.Stderr, err)
		return
	}
	srcErr := errors.NewSourceError(pos, err.Error(), input, filename)
	fmt.Fprintln(os.Stderr, srcErr.Format(true))
}
