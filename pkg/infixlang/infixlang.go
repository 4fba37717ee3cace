// Package infixlang is the public embedding API for the infixlang
// interpreter. An Engine owns a running context; each Eval call parses and
// evaluates one source chunk against it, the way one REPL line would.
package infixlang

import (
	"github.com/a-rahimi/infixlang/internal/ast"
	"github.com/a-rahimi/infixlang/internal/interp"
	"github.com/a-rahimi/infixlang/internal/lexer"
	"github.com/a-rahimi/infixlang/internal/parser"
)

// Engine evaluates infixlang source chunks against a persistent context.
// It is not safe for concurrent use.
type Engine struct {
	interp *interp.Interpreter
	ctx    *interp.Context
}

// New creates an engine with an empty global context.
func New() *Engine {
	return &Engine{
		interp: interp.New(),
		ctx:    interp.NewContext(),
	}
}

// Compile tokenizes and parses a source chunk without evaluating it.
// Unlike the REPL driver, unconsumed trailing tokens are an error here.
func Compile(source string) (*ast.SequenceExpression, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens)
}

// Eval parses and evaluates one source chunk against the engine's context.
// On success the context advances, and the chunk's value is returned. On any
// classified error the context is left as the evaluator left it: lex and
// parse failures change nothing, evaluation failures keep the side effects
// applied before the failure point.
func (e *Engine) Eval(source string) (Result, error) {
	seq, err := Compile(source)
	if err != nil {
		return Result{}, err
	}

	out, err := e.interp.Eval(seq, e.ctx)
	if err != nil {
		// The evaluator returns the last context it produced before the
		// failure; keep it so earlier assignments in the chunk persist.
		if out != nil {
			e.ctx = out.Flatten()
		}
		return Result{}, err
	}

	e.ctx = out.Flatten()
	return Result{value: e.ctx.Val()}, nil
}

// Lookup returns the value bound to name in the engine's context.
func (e *Engine) Lookup(name string) (interp.Value, bool) {
	return e.ctx.Lookup(name)
}

// Reset discards the engine's context and starts over empty.
func (e *Engine) Reset() {
	e.ctx = interp.NewContext()
}

// Result is the outcome of evaluating a chunk.
type Result struct {
	value interp.Value
}

// Value returns the chunk's value, or nil when the chunk produced none.
func (r Result) Value() interp.Value {
	return r.value
}

// Int returns the result as an integer, with ok false when the result is
// unset or not an integer.
func (r Result) Int() (int64, bool) {
	iv, ok := r.value.(*interp.IntegerValue)
	if !ok {
		return 0, false
	}
	return iv.Value, true
}

// String returns the printed form of the result, or "" when unset.
func (r Result) String() string {
	if r.value == nil {
		return ""
	}
	return r.value.String()
}
