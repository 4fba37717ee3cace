package parser

import (
	"fmt"
	"strings"

	"github.com/a-rahimi/infixlang/internal/ast"
	"github.com/a-rahimi/infixlang/internal/lexer"
)

// NoRuleMatchedError reports that none of a rule's alternatives matched the
// token stream.
type NoRuleMatchedError struct {
	Rule  string         // name of the rule that failed
	Pos   lexer.Position // source position of the offending token
	Index int            // index into the token stream
}

// Error implements the error interface.
func (e *NoRuleMatchedError) Error() string {
	return fmt.Sprintf("no production of rule %s matched at %s", e.Rule, e.Pos)
}

// UnconsumedTokensError reports that the top-level parse succeeded but tokens
// remain in the stream. Tree holds the parse obtained so far, so callers can
// choose to warn and evaluate the partial parse anyway.
type UnconsumedTokensError struct {
	Leftover []lexer.Token
	Tree     *ast.SequenceExpression
}

// Error implements the error interface.
func (e *UnconsumedTokensError) Error() string {
	parts := make([]string, len(e.Leftover))
	for i, tok := range e.Leftover {
		parts[i] = tok.String()
	}
	return fmt.Sprintf("unconsumed tokens: [%s]", strings.Join(parts, " "))
}
