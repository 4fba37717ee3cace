// Package interp provides the runtime values, the context model and the
// evaluator for infixlang.
package interp

import (
	"strconv"

	"github.com/a-rahimi/infixlang/internal/ast"
)

// Value represents a runtime value in the infixlang interpreter.
// All runtime values must implement this interface.
type Value interface {
	// Type returns the type name of the value (e.g., "INTEGER", "QUOTED")
	Type() string
	// String returns the string representation of the value
	String() string
}

// IntegerValue represents a signed integer value.
type IntegerValue struct {
	Value int64
}

// Type returns "INTEGER".
func (i *IntegerValue) Type() string {
	return "INTEGER"
}

// String returns the string representation of the integer.
func (i *IntegerValue) String() string {
	return strconv.FormatInt(i.Value, 10)
}

// QuotedValue represents a first-class unevaluated parse tree, produced by
// the `~` operator. The tree is shared, never copied: AST nodes are immutable
// after parsing. No scope is captured — the tree is re-evaluated in whatever
// context looks the value up.
type QuotedValue struct {
	Node ast.Expression
}

// Type returns "QUOTED".
func (q *QuotedValue) Type() string {
	return "QUOTED"
}

// String returns the quoted tree prefixed with the quoting operator.
func (q *QuotedValue) String() string {
	return "~" + q.Node.String()
}

// ContextValue represents a captured scope, produced by looking up `this`.
// It holds a snapshot of the context chain at capture time; looking the value
// up later re-materializes a fresh copy of that chain inside the caller's
// scope.
type ContextValue struct {
	Ctx *Context
}

// Type returns "CONTEXT".
func (c *ContextValue) Type() string {
	return "CONTEXT"
}

// String lists the names bound anywhere along the captured chain. Values are
// deliberately omitted: a captured context can reach itself through its own
// slots.
func (c *ContextValue) String() string {
	out := "context("
	for i, name := range c.Ctx.boundNames() {
		if i > 0 {
			out += " "
		}
		out += name
	}
	return out + ")"
}
