package interp

import (
	"fmt"

	"github.com/a-rahimi/infixlang/internal/ast"
)

// Interpreter evaluates infixlang AST nodes against contexts.
//
// Evaluation is a function from (node, input context) to an output context.
// The result of every expression travels in the output context's val slot,
// and sequencing threads the output of one sub-evaluation into the input of
// the next. Evaluation errors are classified and returned, never panicked;
// side effects already applied to a context before the error stand.
type Interpreter struct{}

// New creates a new Interpreter.
func New() *Interpreter {
	return &Interpreter{}
}

// Eval evaluates node against ctx and returns the output context.
func (in *Interpreter) Eval(node ast.Expression, ctx *Context) (*Context, error) {
	switch node := node.(type) {
	case *ast.SequenceExpression:
		return in.evalSequence(node, ctx)

	case *ast.IntegerLiteral:
		out := ctx.Child()
		out.val = &IntegerValue{Value: node.Value}
		return out, nil

	case *ast.Identifier:
		return in.evalName(node.Value, ctx)

	case *ast.AssignExpression:
		return in.evalAssign(node, ctx)

	case *ast.LinkExpression:
		return in.evalLink(node, ctx)

	case *ast.BinaryExpression:
		return in.evalBinary(node, ctx)

	case *ast.GroupedExpression:
		return in.evalGrouped(node, ctx)

	case *ast.IfExpression:
		return in.evalIf(node, ctx)

	default:
		return nil, fmt.Errorf("unhandled node type %T", node)
	}
}

// evalSequence threads the context through each element in order. The output
// of the final element is the sequence's output. On failure the last
// successfully-produced context is returned alongside the error, so bindings
// made by earlier elements stay reachable.
func (in *Interpreter) evalSequence(node *ast.SequenceExpression, ctx *Context) (*Context, error) {
	cur := ctx
	for _, expr := range node.Exprs {
		next, err := in.Eval(expr, cur)
		if err != nil {
			return cur, err
		}
		cur = next
	}
	return cur, nil
}

// evalName resolves a variable as an rvalue.
//
// The pseudo-name `this` resolves, not by lookup, to a snapshot of the
// current context. A name bound to a quoted tree re-evaluates that tree in
// the lookup context — dynamic scoping, which is the language's sole closure
// mechanism. A name bound to a captured context re-materializes a fresh copy
// of the capture inside the lookup context and returns it as the output, so
// the rest of the sequence sees the captured bindings.
func (in *Interpreter) evalName(name string, ctx *Context) (*Context, error) {
	if name == "this" {
		out := ctx.Child()
		out.val = &ContextValue{Ctx: ctx.Snapshot()}
		return out, nil
	}

	val, ok := ctx.Lookup(name)
	if !ok {
		return nil, &UnknownVariableError{Name: name, Ctx: ctx.Snapshot()}
	}

	switch val := val.(type) {
	case *QuotedValue:
		return in.Eval(val.Node, ctx)

	case *ContextValue:
		// Clone the capture so later writes through this use never reach
		// the stored snapshot.
		clone := val.Ctx.Snapshot()
		clone.Reparent(ctx)
		clone.val = val
		return clone, nil

	default:
		out := ctx.Child()
		out.val = val
		return out, nil
	}
}

// evalAssign evaluates the right-hand side in the input context and binds the
// name to the resulting value in the input context's slots.
func (in *Interpreter) evalAssign(node *ast.AssignExpression, ctx *Context) (*Context, error) {
	vctx, err := in.Eval(node.Value, ctx)
	if err != nil {
		return nil, err
	}

	ctx.Set(node.Name.Value, vctx.val)

	out := ctx.Child()
	out.val = vctx.val
	return out, nil
}

// evalLink binds the name to the unevaluated parse tree of the right-hand
// side.
func (in *Interpreter) evalLink(node *ast.LinkExpression, ctx *Context) (*Context, error) {
	quoted := &QuotedValue{Node: node.Value}
	ctx.Set(node.Name.Value, quoted)

	out := ctx.Child()
	out.val = quoted
	return out, nil
}

// evalBinary evaluates both operands as rvalues against the input context and
// applies the integer operation.
func (in *Interpreter) evalBinary(node *ast.BinaryExpression, ctx *Context) (*Context, error) {
	lctx, err := in.Eval(node.Left, ctx)
	if err != nil {
		return nil, err
	}
	rctx, err := in.Eval(node.Right, ctx)
	if err != nil {
		return nil, err
	}

	left, err := integerOperand(node.Operator, lctx.val)
	if err != nil {
		return nil, err
	}
	right, err := integerOperand(node.Operator, rctx.val)
	if err != nil {
		return nil, err
	}

	var result int64
	switch node.Operator {
	case "+":
		result = left + right
	case "-":
		result = left - right
	case "*":
		result = left * right
	case "/":
		if right == 0 {
			return nil, &DivisionByZeroError{}
		}
		result = left / right
	case "==":
		if left == right {
			result = 1
		} else {
			result = 0
		}
	default:
		return nil, fmt.Errorf("unhandled operator %s", node.Operator)
	}

	out := ctx.Child()
	out.val = &IntegerValue{Value: result}
	return out, nil
}

// integerOperand unwraps an integer operand or fails with a type mismatch.
func integerOperand(operator string, val Value) (int64, error) {
	iv, ok := val.(*IntegerValue)
	if !ok {
		return 0, &TypeMismatchError{Operator: operator, Got: val}
	}
	return iv.Value, nil
}

// evalGrouped evaluates the inner sequence in a fresh child scope. The
// sub-scope's bindings are discarded; only its value crosses the boundary.
func (in *Interpreter) evalGrouped(node *ast.GroupedExpression, ctx *Context) (*Context, error) {
	sub := ctx.Child()
	inner, err := in.Eval(node.Inner, sub)
	if err != nil {
		return nil, err
	}

	out := ctx.Child()
	out.val = inner.val
	return out, nil
}

// evalIf evaluates the condition, then dispatches on the `then` and `else`
// bindings of the context the condition produced:
//
//	cond != 0            -> evaluate then
//	cond == 0, else set  -> evaluate else
//	cond == 0, else unset-> return the condition's result unchanged
//
// then and else are customarily bound with ~, so their trees are re-evaluated
// here every time; that late binding is what lets recursion terminate.
func (in *Interpreter) evalIf(node *ast.IfExpression, ctx *Context) (*Context, error) {
	condCtx, err := in.Eval(node.Cond, ctx)
	if err != nil {
		return nil, err
	}

	cond, ok := condCtx.val.(*IntegerValue)
	if !ok {
		return nil, &TypeMismatchError{Operator: "if", Got: condCtx.val}
	}

	if cond.Value != 0 {
		return in.evalName("then", condCtx)
	}
	if condCtx.Contains("else") {
		return in.evalName("else", condCtx)
	}
	return condCtx, nil
}
