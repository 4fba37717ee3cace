// Package parser implements a generic recursive-descent grammar engine and
// the infixlang grammar that drives it.
//
// A grammar is declared as data: each non-terminal is a Rule with an ordered
// list of alternatives, and each alternative is a sequence of symbols
// (terminal token types or references to other rules) plus a node builder.
// The engine tries alternatives in declared order and backtracks the token
// cursor on failure, so declaration order encodes precedence and
// disambiguation.
package parser

import (
	"github.com/a-rahimi/infixlang/internal/ast"
	"github.com/a-rahimi/infixlang/internal/lexer"
)

// Symbol is one element of an alternative: either a terminal token type or a
// reference to another rule.
type Symbol struct {
	terminal  bool
	tokenType lexer.TokenType
	rule      *Rule
}

// Term creates a terminal symbol matching a single token of the given type.
func Term(tt lexer.TokenType) Symbol {
	return Symbol{terminal: true, tokenType: tt}
}

// Ref creates a symbol referencing another rule.
func Ref(r *Rule) Symbol {
	return Symbol{rule: r}
}

// Part is one matched element of an alternative: the consumed token for a
// terminal symbol, or the constructed node for a rule reference.
type Part struct {
	Token lexer.Token
	Node  ast.Expression
}

// BuildFunc constructs an AST node from the matched parts of an alternative.
// The parts slice has one entry per symbol, in declaration order.
type BuildFunc func(parts []Part) ast.Expression

// Alternative is one production of a rule: a symbol sequence that must match
// consecutively, and a builder for the resulting node. A nil Build marks an
// alias production, which passes its sole sub-node through unchanged.
type Alternative struct {
	Symbols []Symbol
	Build   BuildFunc
}

// Rule is a named non-terminal with an ordered list of alternatives.
type Rule struct {
	Name         string
	Alternatives []Alternative
}

// cursor tracks a position in a token stream. Alternatives that fail restore
// the position they started from, which gives the engine whole-production
// backtracking.
type cursor struct {
	tokens []lexer.Token
	pos    int
}

// current returns the token at the cursor, or a synthetic EOF token when the
// stream is exhausted.
func (c *cursor) current() lexer.Token {
	if c.pos < len(c.tokens) {
		return c.tokens[c.pos]
	}
	var pos lexer.Position
	if n := len(c.tokens); n > 0 {
		last := c.tokens[n-1]
		pos = lexer.Position{
			Line:   last.Pos.Line,
			Column: last.Pos.Column + len(last.Literal),
			Offset: last.Pos.Offset + len(last.Literal),
		}
	} else {
		pos = lexer.Position{Line: 1, Column: 1, Offset: 0}
	}
	return lexer.NewToken(lexer.EOF, "", pos)
}

// exhausted reports whether every token has been consumed.
func (c *cursor) exhausted() bool {
	return c.pos >= len(c.tokens)
}

// parseRule tries the rule's alternatives in declared order. The first
// alternative whose symbols all match wins; its builder constructs the node.
func parseRule(r *Rule, c *cursor) (ast.Expression, error) {
	for _, alt := range r.Alternatives {
		mark := c.pos

		parts, err := matchAlternative(alt, c)
		if err != nil {
			c.pos = mark
			continue
		}

		if alt.Build == nil {
			// Alias production: pass the sub-node through.
			return parts[0].Node, nil
		}
		return alt.Build(parts), nil
	}

	return nil, &NoRuleMatchedError{
		Rule:  r.Name,
		Pos:   c.current().Pos,
		Index: c.pos,
	}
}

// matchAlternative matches each symbol of the alternative consecutively.
func matchAlternative(alt Alternative, c *cursor) ([]Part, error) {
	parts := make([]Part, 0, len(alt.Symbols))

	for _, sym := range alt.Symbols {
		if sym.terminal {
			tok := c.current()
			if tok.Type != sym.tokenType {
				return nil, &NoRuleMatchedError{
					Rule:  sym.tokenType.String(),
					Pos:   tok.Pos,
					Index: c.pos,
				}
			}
			c.pos++
			parts = append(parts, Part{Token: tok})
			continue
		}

		node, err := parseRule(sym.rule, c)
		if err != nil {
			return nil, err
		}
		parts = append(parts, Part{Node: node})
	}

	return parts, nil
}

// ParseRule parses the given rule against a token stream and returns the
// constructed node along with any unconsumed tokens.
func ParseRule(r *Rule, tokens []lexer.Token) (ast.Expression, []lexer.Token, error) {
	c := &cursor{tokens: tokens}
	node, err := parseRule(r, c)
	if err != nil {
		return nil, tokens[c.pos:], err
	}
	return node, tokens[c.pos:], nil
}

// Parse parses a complete token stream as the root Sequence rule. If tokens
// remain after a successful parse, it returns an UnconsumedTokensError that
// still carries the parse obtained so far.
func Parse(tokens []lexer.Token) (*ast.SequenceExpression, error) {
	node, leftover, err := ParseRule(sequenceRule, tokens)
	if err != nil {
		return nil, err
	}

	seq := node.(*ast.SequenceExpression)
	if len(leftover) > 0 {
		return seq, &UnconsumedTokensError{Leftover: leftover, Tree: seq}
	}
	return seq, nil
}
