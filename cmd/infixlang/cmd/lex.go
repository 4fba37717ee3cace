package cmd

import (
	"fmt"
	"os"

	"github.com/a-rahimi/infixlang/internal/errors"
	"github.com/a-rahimi/infixlang/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	showPos  bool
	showType bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize an infixlang file or expression",
	Long: `Tokenize (lex) infixlang source and print the resulting tokens.

This command is useful for debugging the lexer and understanding how source
code is tokenized.

Examples:
  # Tokenize a script file
  infixlang lex script.ifx

  # Tokenize an inline expression
  infixlang lex -e "a = 2*3, a + 1"

  # Show token types and positions
  infixlang lex --show-type --show-pos script.ifx`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
}

func lexScript(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		if unrec, ok := err.(*lexer.UnrecognizedError); ok {
			srcErr := errors.NewSourceError(unrec.Pos, err.Error(), input, filename)
			fmt.Fprintln(os.Stderr, srcErr.Format(true))
			return fmt.Errorf("tokenization failed")
		}
		return err
	}

	for _, tok := range tokens {
		switch {
		case showType && showPos:
			fmt.Printf("%-8s %-12q %s\n", tok.Type, tok.Literal, tok.Pos)
		case showType:
			fmt.Printf("%-8s %q\n", tok.Type, tok.Literal)
		case showPos:
			fmt.Printf("%-12q %s\n", tok.Literal, tok.Pos)
		default:
			fmt.Println(tok)
		}
	}
	return nil
}
