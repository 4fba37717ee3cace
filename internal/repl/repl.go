// Package repl implements the line-oriented driver shared by the interactive
// REPL and script mode: repeated tokenize-parse-evaluate against a running
// context.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/a-rahimi/infixlang/internal/interp"
	"github.com/a-rahimi/infixlang/internal/lexer"
	"github.com/a-rahimi/infixlang/internal/parser"
)

// Session holds the running top-level context and the streams a driver
// reports on. Values go to Out followed by a newline; errors and warnings go
// to ErrOut. The running context is the only long-lived mutable object in a
// session, and only the driver advances it.
type Session struct {
	Out    io.Writer
	ErrOut io.Writer

	interp *interp.Interpreter
	ctx    *interp.Context
}

// NewSession creates a session with an empty global context.
func NewSession(out, errOut io.Writer) *Session {
	return &Session{
		Out:    out,
		ErrOut: errOut,
		interp: interp.New(),
		ctx:    interp.NewContext(),
	}
}

// Context returns the session's running context.
func (s *Session) Context() *interp.Context {
	return s.ctx
}

// EvalLine processes one logical line: tokenize, parse a Sequence, evaluate
// against the running context, print the resulting value when set. Blank
// lines are ignored.
//
// Lex and parse errors are reported on ErrOut and leave the running context
// untouched. Tokens left unconsumed after a successful partial parse are
// warned about, and the partial parse still evaluates. Evaluation errors are
// reported on ErrOut; side effects applied before the failure point are kept.
// The returned error is whatever was reported, already written to ErrOut.
func (s *Session) EvalLine(line string) error {
	if strings.TrimSpace(line) == "" {
		// Blank lines are not in the grammar.
		return nil
	}

	tokens, err := lexer.Tokenize(line)
	if err != nil {
		fmt.Fprintln(s.ErrOut, err)
		return err
	}
	if len(tokens) == 0 {
		return nil
	}

	seq, err := parser.Parse(tokens)
	if err != nil {
		unconsumed, ok := err.(*parser.UnconsumedTokensError)
		if !ok {
			fmt.Fprintln(s.ErrOut, err)
			return err
		}
		fmt.Fprintf(s.ErrOut, "Warning: stuff unparsed on the line: [%s]\n", joinTokens(unconsumed.Leftover))
		seq = unconsumed.Tree
	}

	out, evalErr := s.interp.Eval(seq, s.ctx)
	if evalErr != nil {
		// The evaluator hands back the last context it produced before the
		// failure, so bindings made by earlier sequence elements survive
		// into the next line.
		if out != nil {
			s.ctx = out.Flatten()
		}
		fmt.Fprintln(s.ErrOut, evalErr)
		return evalErr
	}

	// Flattening bounds memory growth across lines: without it every line
	// would deepen the running context's parent chain.
	s.ctx = out.Flatten()

	if val := s.ctx.Val(); val != nil {
		fmt.Fprintln(s.Out, val)
	}
	return nil
}

// Run reads logical lines from in until end of input, evaluating each.
// It returns an error if any line failed, for script mode's exit status;
// the per-line reporting has already happened on ErrOut.
func (s *Session) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	failed := 0
	for scanner.Scan() {
		if err := s.EvalLine(scanner.Text()); err != nil {
			failed++
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d line(s) failed", failed)
	}
	return nil
}

func joinTokens(tokens []lexer.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	return strings.Join(parts, " ")
}
